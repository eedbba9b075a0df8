package main

import (
	"context"
	"fmt"

	"github.com/freshai/laundryfront/internal/app"
	"github.com/freshai/laundryfront/internal/config"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/freshai/laundryfront/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// инициализация хранилища сессий
	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	defer database.Close()
	if err := database.Initialize(context.Background()); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}
	// запуск приложения
	app.Run(config, storage.NewSessionsStorage(database))
}
