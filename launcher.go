package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// Локальный запуск: сервер в фоне и сборка CLI рядом с репозиторием.
func main() {
	fmt.Println("Запуск сервиса закладок...")

	clientName := "bookmarks"
	if runtime.GOOS == "windows" {
		clientName = "bookmarks.exe"
	}
	// запускаем сервер на фоне
	server := exec.Command("go", "run", "./cmd/server/main.go")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)
	// собираем клиента
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/bookmarks")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			fmt.Printf("Ошибка сборки клиента: %v\n", err)
		}
		if runtime.GOOS != "windows" {
			os.Chmod(clientName, 0755)
		}
	}

	fmt.Println("Сервер запущен на http://127.0.0.1:3333")
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\bookmarks.exe")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./bookmarks")
	}

	server.Wait()
}
