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

func solveCmd() *cobra.Command {
	var file string
	var async bool
	var timeLimit int

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Submit a solve request read from a JSON request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}

			body, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read request file: %w", err)
			}

			var req map[string]any
			if err := json.Unmarshal(body, &req); err != nil {
				return fmt.Errorf("invalid request JSON: %w", err)
			}
			req["async"] = async
			if timeLimit > 0 {
				req["time_limit_seconds"] = timeLimit
			}

			payload, err := json.Marshal(req)
			if err != nil {
				return fmt.Errorf("failed to re-encode request: %w", err)
			}

			client := &http.Client{Timeout: 5 * time.Minute}
			resp, err := client.Post(serverAddr+"/api/solves", "application/json", bytes.NewReader(payload))
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			out, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read response: %w", err)
			}

			fmt.Printf("HTTP %d\n%s\n", resp.StatusCode, prettyJSON(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a JSON solve request body")
	cmd.Flags().BoolVar(&async, "async", false, "enqueue the solve instead of blocking for the result")
	cmd.Flags().IntVar(&timeLimit, "time-limit", 0, "solver time limit in seconds (0 uses the server default)")

	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <job-id>",
		Short: "Check the status of a previously submitted solve job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: 10 * time.Second}
			resp, err := client.Get(serverAddr + "/api/solves/" + args[0])
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			out, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read response: %w", err)
			}

			fmt.Printf("HTTP %d\n%s\n", resp.StatusCode, prettyJSON(out))
			return nil
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the solver server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: 5 * time.Second}
			resp, err := client.Get(serverAddr + "/api/health")
			if err != nil {
				return fmt.Errorf("server unreachable: %w", err)
			}
			defer resp.Body.Close()

			fmt.Printf("HTTP %d\n", resp.StatusCode)
			return nil
		},
	}
}

func prettyJSON(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(pretty)
}
