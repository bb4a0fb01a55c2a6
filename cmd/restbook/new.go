package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/restbook/restbook/pkg/collection"
	"github.com/restbook/restbook/pkg/request"
)

var (
	newMethod string
	newURL    string
)

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Scaffold a request document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !strings.HasSuffix(path, collection.FileSuffix) {
			path += collection.FileSuffix
		}

		req := request.New()
		req.Name = strings.TrimSuffix(filepath.Base(path), collection.FileSuffix)
		req.Method = strings.ToUpper(newMethod)
		req.URL = newURL
		if err := req.Validate(); err != nil {
			return err
		}

		if err := req.Save(path); err != nil {
			return err
		}
		fmt.Printf("Request saved to %s\n", path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&newMethod, "method", "X", "GET", "HTTP method")
	newCmd.Flags().StringVarP(&newURL, "url", "u", "", "request URL")
}
