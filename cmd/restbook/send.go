package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/restbook/restbook/pkg/environment"
	"github.com/restbook/restbook/pkg/request"
)

var sendEnvFile string

var sendCmd = &cobra.Command{
	Use:   "send <file>",
	Short: "Execute a saved request and print the response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := request.Load(args[0])
		if err != nil {
			return err
		}

		envFile := sendEnvFile
		if envFile == "" {
			envFile = viper.GetString("environment")
		}
		if envFile != "" {
			vars, err := environment.Load(envFile)
			if err != nil {
				return fmt.Errorf("failed to load environment %q: %w", envFile, err)
			}
			req = environment.Apply(req, vars)
		}

		httpReq, err := req.BuildHTTP(cmd.Context())
		if err != nil {
			return err
		}
		client, err := req.Options.HTTPClient()
		if err != nil {
			return err
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		fmt.Printf("%s %s\n", resp.Proto, resp.Status)
		for name, values := range resp.Header {
			fmt.Printf("%s: %s\n", name, strings.Join(values, ", "))
		}
		fmt.Println()
		os.Stdout.Write(body)
		fmt.Println()
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sendEnvFile, "env", "e", "", "environment file for variable substitution")
}
