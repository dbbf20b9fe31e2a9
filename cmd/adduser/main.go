package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/florandefossez/capsules/internal/config"
	"github.com/florandefossez/capsules/internal/database"
	"github.com/florandefossez/capsules/internal/models"
	"github.com/florandefossez/capsules/internal/repository"
	"github.com/florandefossez/capsules/internal/service"
)

// adduser creates an administrator account. The web application has no
// signup route; accounts only ever come from this tool.
//
//	adduser -username alice -password s3cret -permission 1
func main() {
	username := flag.String("username", "", "account username")
	password := flag.String("password", "", "account password (hashed before storage)")
	permission := flag.Int("permission", models.PermissionRead, "0 = read-only, 1 = read-write")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: adduser -username <name> -password <password> [-permission 0|1]")
		os.Exit(2)
	}
	if *permission != models.PermissionRead && *permission != models.PermissionReadWrite {
		fmt.Fprintln(os.Stderr, "permission must be 0 or 1")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	hash, err := service.HashPassword(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Username:   *username,
		Password:   hash,
		Permission: *permission,
	}
	if err := repository.NewUserRepository(db).Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created user %q (id %d, permission %d)\n", user.Username, user.ID, user.Permission)
}
