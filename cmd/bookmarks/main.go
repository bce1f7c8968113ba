// Package main содержит точку входа консольного клиента сервиса закладок.
//
// Пакет отвечает за запуск CLI и передачу информации о версии и дате сборки в CLI-слой.
package main

import "github.com/IvanChernomyrdin/go-bookmarks/internal/agent/cli"

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	// По умолчанию используется значение "dev".
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	// По умолчанию используется значение "unknown".
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
