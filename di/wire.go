//go:build wireinject
// +build wireinject

package di

import (
	"dueday/app"
	"dueday/config"
	"dueday/infras/timer"
	"dueday/transport/worker"

	reminderNotifier "dueday/internal/domains/reminder/notifier"
	reminderService "dueday/internal/domains/reminder/service"
	todoRepository "dueday/internal/domains/todo/repository"
	todoService "dueday/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	provideDatabase,
	provideOtel,
	provideKafka,
	provideClock,
	timer.New,
)

var sharedHelpers = wire.NewSet(
	provideCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var reminderDomain = wire.NewSet(
	wire.Bind(new(reminderService.TodoSource), new(todoRepository.Todo)),
	reminderNotifier.New,
	reminderService.New,
)

var domains = wire.NewSet(
	todoDomain,
	reminderDomain,
)

func InitializeApp() (*app.App, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		worker.New,
		app.New,
	)

	return &app.App{}, nil, nil
}
