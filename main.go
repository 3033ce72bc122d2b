package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/session"
)

const cliVersion = "1.0.0"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = strings.ToLower(os.Args[1])
	}

	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command> [options]
Commands:
  help                       Display this help message.
  version                    Show version information.
  serve [--config <path>]    Run the blog server (default command).
`
	fmt.Println(helpText)
}

// serve loads configuration, applies migrations, and starts the HTTP
// server. Listening never begins if migrations fail.
func serve() {
	configPath := "config/app.yaml"
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			configPath = os.Args[i+1]
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repositories.Open(cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	sessionDB, err := session.Open(cfg.SessionDir)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer sessionDB.Close()

	store := session.NewStore(sessionDB, cfg.SessionMaxAge, []byte(cfg.SessionSecret))
	router := routes.Setup(db, store)

	log.Printf("Listening on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
