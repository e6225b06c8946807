package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nja-rasheed/taskfy/internal/client"
	"github.com/nja-rasheed/taskfy/internal/controller"
	"github.com/nja-rasheed/taskfy/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	serverURL := os.Getenv("TASKFY_SERVER")
	if serverURL == "" {
		serverURL = "http://localhost:5000"
	}

	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "login":
		return login(serverURL)
	case "register":
		return register(serverURL)
	case "logout":
		return logout()
	case "", "tasks":
		return openTasks(serverURL)
	case "help", "-h", "--help":
		usage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage(os.Stderr)
		return 2
	}
}

func usage(w *os.File) {
	fmt.Fprintln(w, "Usage: taskfy [command]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  (none)    open the task list")
	fmt.Fprintln(w, "  login     sign in and store the session")
	fmt.Fprintln(w, "  register  create an account")
	fmt.Fprintln(w, "  logout    drop the stored session")
}

// promptCredentials reads email and password from stdin.
func promptCredentials() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}
	fmt.Print("Password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(email), strings.TrimSpace(password), nil
}

// login is the one place where errors reach the user; everywhere else a
// failed request simply leaves the list unchanged.
func login(serverURL string) int {
	email, password, err := promptCredentials()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	gw := client.New(serverURL, "")
	token, userEmail, err := gw.Login(context.Background(), email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		return 1
	}
	if err := client.SaveCredentials(token, userEmail); err != nil {
		fmt.Fprintf(os.Stderr, "save session: %v\n", err)
		return 1
	}

	fmt.Printf("Logged in as %s\n", userEmail)
	return 0
}

func register(serverURL string) int {
	email, password, err := promptCredentials()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	gw := client.New(serverURL, "")
	if err := gw.Register(context.Background(), email, password); err != nil {
		fmt.Fprintf(os.Stderr, "register failed: %v\n", err)
		return 1
	}

	fmt.Println("Account created. Run `taskfy login` to sign in.")
	return 0
}

func logout() int {
	if err := client.DeleteCredentials(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println("Logged out.")
	return 0
}

func openTasks(serverURL string) int {
	creds, err := client.LoadCredentials()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if creds == nil {
		fmt.Fprintln(os.Stderr, "Not logged in. Run `taskfy login` first.")
		return 1
	}

	gw := client.New(serverURL, creds.Token)
	ctrl := controller.New(gw, creds.Email)

	if err := ctrl.Init(context.Background()); err != nil {
		if err == client.ErrUnauthorized {
			fmt.Fprintln(os.Stderr, "Session expired. Run `taskfy login` again.")
			return 1
		}
		fmt.Fprintf(os.Stderr, "fetch tasks: %v\n", err)
		return 1
	}

	loggedOut, err := tui.Run(ctrl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if loggedOut {
		if err := client.DeleteCredentials(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("Logged out.")
	}
	return 0
}
