package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "caribank-cli",
		Short: "Caribank CLI tool",
		Long:  `A command line interface for interacting with the Caribank API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Caribank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("CARIBANK_TOKEN"), "Session token from login")

	var (
		firstName   string
		lastName    string
		loginName   string
		age         int
		nationalID  string
		accountType string
		password    string
	)

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Open a new account",
		Run: func(cmd *cobra.Command, args []string) {
			register(firstName, lastName, loginName, age, nationalID, accountType, password)
		},
	}
	registerCmd.Flags().StringVar(&firstName, "first-name", "", "Holder first name")
	registerCmd.Flags().StringVar(&lastName, "last-name", "", "Holder last name")
	registerCmd.Flags().StringVar(&loginName, "login-name", "", "Login name")
	registerCmd.Flags().IntVar(&age, "age", 0, "Holder age")
	registerCmd.Flags().StringVar(&nationalID, "national-id", "", "10-digit national ID")
	registerCmd.Flags().StringVar(&accountType, "account-type", "savings", "Account type (savings or checking)")
	registerCmd.Flags().StringVar(&password, "password", "", "Password (at least 8 characters)")
	rootCmd.AddCommand(registerCmd)

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and open a session",
		Run: func(cmd *cobra.Command, args []string) {
			login(nationalID, password)
		},
	}
	loginCmd.Flags().StringVar(&nationalID, "national-id", "", "10-digit national ID")
	loginCmd.Flags().StringVar(&password, "password", "", "Password")
	rootCmd.AddCommand(loginCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "balance",
		Short: "Show the session account",
		Run: func(cmd *cobra.Command, args []string) {
			call(http.MethodGet, "/api/v1/session/", nil)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "deposit [amount]",
		Short: "Deposit into the session account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			call(http.MethodPost, "/api/v1/session/deposits", map[string]string{"amount": args[0]})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Withdraw from the session account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			call(http.MethodPost, "/api/v1/session/withdrawals", map[string]string{"amount": args[0]})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "transfer [amount] [destination-account-number]",
		Short: "Transfer to another account number",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			call(http.MethodPost, "/api/v1/session/transfers", map[string]string{
				"amount":                     args[0],
				"destination_account_number": args[1],
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List the session transactions",
		Run: func(cmd *cobra.Command, args []string) {
			call(http.MethodGet, "/api/v1/session/transactions", nil)
		},
	})

	certificateCmd := &cobra.Command{
		Use:   "certificate",
		Short: "Issue a balance certificate",
		Run: func(cmd *cobra.Command, args []string) {
			certificate()
		},
	}
	rootCmd.AddCommand(certificateCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Close the session",
		Run: func(cmd *cobra.Command, args []string) {
			call(http.MethodPost, "/api/v1/auth/logout", nil)
		},
	})

	return rootCmd
}

func register(firstName, lastName, loginName string, age int, nationalID, accountType, password string) {
	call(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"first_name":   firstName,
		"last_name":    lastName,
		"login_name":   loginName,
		"age":          age,
		"national_id":  nationalID,
		"account_type": accountType,
		"password":     password,
	})
}

func login(nationalID, password string) {
	body := doRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"national_id": nationalID,
		"password":    password,
	})

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if greeting, ok := result["greeting"].(string); ok {
		fmt.Println(greeting)
	}
	fmt.Printf("Token: %s\n", result["token"])
	fmt.Println("Export it with: export CARIBANK_TOKEN=<token>")
}

func certificate() {
	body := doRequest(http.MethodGet, "/api/v1/session/certificate", nil)

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if document, ok := result["document"].(string); ok {
		fmt.Println(document)
		return
	}
	printJSON(result)
}

// call performs the request and pretty-prints the JSON response.
func call(method, path string, payload any) {
	body := doRequest(method, path, payload)

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	printJSON(result)
}

func doRequest(method, path string, payload any) []byte {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}

func printJSON(v any) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}
