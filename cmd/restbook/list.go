package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/restbook/restbook/pkg/collection"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "Show the collection tree under a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := viper.GetString("collection")
		if len(args) == 1 {
			dir = args[0]
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		col, err := collection.FromDirectory(dir, logger)
		if err != nil {
			return err
		}

		printCollection(col, 0)
		fmt.Printf("\n%d request(s)\n", col.Count())
		return nil
	},
}

var (
	folderStyle = color.New(color.FgCyan, color.Bold)
	methodStyle = map[string]*color.Color{
		"GET":     color.New(color.FgGreen),
		"POST":    color.New(color.FgYellow),
		"PUT":     color.New(color.FgBlue),
		"PATCH":   color.New(color.FgMagenta),
		"DELETE":  color.New(color.FgRed),
		"HEAD":    color.New(color.FgWhite),
		"OPTIONS": color.New(color.FgWhite),
	}
)

func printCollection(col *collection.Collection, depth int) {
	indent := strings.Repeat("  ", depth)
	folderStyle.Printf("%s%s/\n", indent, col.Name)

	for _, req := range col.Requests {
		name := req.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(req.Path), collection.FileSuffix)
		}
		style, ok := methodStyle[req.Method]
		if !ok {
			style = color.New(color.FgWhite)
		}
		fmt.Printf("%s  %s %s\n", indent, style.Sprint(req.Method), name)
	}
	for _, child := range col.Children {
		printCollection(child, depth+1)
	}
}
