package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "walletd-cli",
		Short: "walletd CLI tool",
		Long:  `A command line interface for interacting with the walletd API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the walletd API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet operations",
	}

	createCmd := &cobra.Command{
		Use:   "create <owner-id>",
		Short: "Create a wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/wallets", map[string]any{"owner_id": args[0]}, "")
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <wallet-id>",
		Short: "Get a wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/wallets/" + url.PathEscape(args[0]))
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance <wallet-id>",
		Short: "Get the current balance of a wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/wallets/" + url.PathEscape(args[0]) + "/balance")
		},
	}

	var historyAt string
	historyCmd := &cobra.Command{
		Use:   "history <wallet-id>",
		Short: "Get the balance of a wallet at a past moment",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/wallets/" + url.PathEscape(args[0]) + "/balance/history?at=" + url.QueryEscape(historyAt))
		},
	}
	historyCmd.Flags().StringVar(&historyAt, "at", "", "Cutoff timestamp, e.g. 2026-01-02T15:04:05")
	historyCmd.MarkFlagRequired("at")

	operationsCmd := &cobra.Command{
		Use:   "operations <wallet-id>",
		Short: "List the operation log of a wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/wallets/" + url.PathEscape(args[0]) + "/operations")
		},
	}

	var idempotencyKey string

	depositCmd := &cobra.Command{
		Use:   "deposit <wallet-id> <amount>",
		Short: "Deposit money into a wallet",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/wallets/"+url.PathEscape(args[0])+"/deposit", map[string]any{
				"amount": json.Number(args[1]),
			}, idempotencyKey)
		},
	}
	depositCmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key for the operation")
	depositCmd.MarkFlagRequired("idempotency-key")

	withdrawCmd := &cobra.Command{
		Use:   "withdraw <wallet-id> <amount>",
		Short: "Withdraw money from a wallet",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/wallets/"+url.PathEscape(args[0])+"/withdraw", map[string]any{
				"amount": json.Number(args[1]),
			}, idempotencyKey)
		},
	}
	withdrawCmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key for the operation")
	withdrawCmd.MarkFlagRequired("idempotency-key")

	transferCmd := &cobra.Command{
		Use:   "transfer <from-wallet-id> <to-wallet-id> <amount>",
		Short: "Transfer money between two wallets",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/transfers", map[string]any{
				"from_account_id": args[0],
				"to_account_id":   args[1],
				"amount":          json.Number(args[2]),
			}, idempotencyKey)
		},
	}
	transferCmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key for the transfer")
	transferCmd.MarkFlagRequired("idempotency-key")

	walletCmd.AddCommand(createCmd, getCmd, balanceCmd, historyCmd, operationsCmd, depositCmd, withdrawCmd)
	rootCmd.AddCommand(walletCmd, transferCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func postJSON(path string, payload map[string]any, idempotencyKey string) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 300 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(pretty.String())
}
