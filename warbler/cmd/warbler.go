// Command-line admin tool: run migrations or create a user without
// going through the HTTP surface.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"warbler/warbler/config"
	"warbler/warbler/controllers"
	"warbler/warbler/sources/psql"
	"warbler/warbler/sources/psql/dao"
	"warbler/warbler/types"
	"warbler/warbler/utils/logging"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	args := os.Args[1:]
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	switch args[0] {
	case "migrate":
		// NewDatabase already migrated; reaching here means it worked.
		fmt.Println("schema up to date")

	case "createuser":
		authCtrl := controllers.NewAuthController(dao.NewUserDAO(db.DB), cfg)
		reader := bufio.NewReader(os.Stdin)
		username := prompt(reader, "username")
		email := prompt(reader, "email")
		password := prompt(reader, "password")

		user, err := authCtrl.Signup(ctx, types.SignupRequest{
			Username: username,
			Email:    email,
			Password: password,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "createuser failed:", err)
			os.Exit(1)
		}
		fmt.Printf("created user %q (id %d)\n", user.Username, user.ID)

	default:
		usage()
		os.Exit(1)
	}
}

func prompt(reader *bufio.Reader, field string) string {
	fmt.Printf("%s: ", field)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func usage() {
	fmt.Println("warbler admin usage:")
	fmt.Println("  warbler migrate      # create or update the database schema")
	fmt.Println("  warbler createuser   # interactively create a user")
}
