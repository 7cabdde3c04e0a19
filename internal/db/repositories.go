package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Goals       *GoalRepository
	Actions     *ActionRepository
	GoalUpdates *GoalUpdateRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Goals:       NewGoalRepository(database),
		Actions:     NewActionRepository(database),
		GoalUpdates: NewGoalUpdateRepository(database),
	}
}
