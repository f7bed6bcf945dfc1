package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/ucdblocks"
	"github.com/urfave/cli/v2"
)

func main() {
	var file string
	var url string
	var out string

	app := &cli.App{
		Name:  "ucdblocks",
		Usage: "look up Unicode blocks from the UCD Blocks.txt file",
		Commands: []*cli.Command{
			{
				Name:      "lookup",
				Aliases:   []string{"l"},
				Usage:     "Print the block name for one or more code-points",
				ArgsUsage: "CODEPOINT...  (hex, with or without U+ prefix)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "file",
						Aliases:     []string{"f"},
						Value:       "",
						Usage:       "Path to a local Blocks.txt; downloaded if not given",
						Destination: &file,
					},
					&cli.StringFlag{
						Name:        "url",
						Aliases:     []string{"u"},
						Value:       ucdblocks.LatestURL,
						Usage:       "Where to download Blocks.txt from",
						Destination: &url,
					},
				},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() == 0 {
						return cli.Exit("lookup needs at least one code-point argument", 2)
					}
					table, err := loadTable(file, url)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return lookup(table, cCtx.Args().Slice())
				},
			},
			{
				Name:    "fetch",
				Aliases: []string{"dl"},
				Usage:   "Download Blocks.txt and save it locally",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Value:       "Blocks.txt",
						Usage:       "Output file",
						Destination: &out,
					},
					&cli.StringFlag{
						Name:        "url",
						Aliases:     []string{"u"},
						Value:       ucdblocks.LatestURL,
						Usage:       "Where to download Blocks.txt from",
						Destination: &url,
					},
				},
				Action: func(cCtx *cli.Context) error {
					if err := fetch(url, out); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadTable(file, url string) (*ucdblocks.BlockTable, error) {
	if file != "" {
		return ucdblocks.FromFile(file)
	}
	return ucdblocks.DownloadFrom(nil, url)
}

func lookup(table *ucdblocks.BlockTable, args []string) error {
	for _, arg := range args {
		hex := strings.TrimPrefix(strings.TrimPrefix(arg, "U+"), "u+")
		n, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return cli.Exit(fmt.Sprintf("%q is not a hexadecimal code-point", arg), 2)
		}
		fmt.Printf("U+%04X  %s\n", n, table.BlockOf(rune(n)))
	}
	return nil
}

// fetch downloads raw Blocks.txt data, checks that it parses, and writes
// it to disk unchanged.
func fetch(url, out string) error {
	text, err := ucdblocks.FetchText(nil, url)
	if err != nil {
		return err
	}
	table, err := ucdblocks.Parse(text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d block ranges)\n", out, table.Len())
	return nil
}
