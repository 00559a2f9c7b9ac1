// Command admin runs maintenance tasks against the configured workbook.
//
//	admin setup        write header rows for every table
//	admin family-ids   renumber families FAMILY_001, FAMILY_002, ... by family name
//	admin links        rewrite the "Invite links" table
//	admin responses    print the Responses table
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"weddinginvite/config"
	"weddinginvite/internal/bootstrap"
	"weddinginvite/internal/domain"
	"weddinginvite/internal/repository/workbook"
	"weddinginvite/internal/services"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: admin [flags] setup|family-ids|links|responses\n")
	flag.PrintDefaults()
}

func main() {
	baseURL := flag.String("base-url", "", "site URL used for invite links (default BASE_URL)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := execute(flag.Arg(0), *baseURL, os.Stdout); err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
}

// execute opens the configured store, runs cmd and closes the store again.
func execute(cmd, baseURL string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	logger := config.NewLogger(cfg)
	ctx := context.Background()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	families := workbook.NewFamilyRepository(store)
	admin := services.NewAdminService(store, families, cfg.ResponseSchema, cfg.RequestTimeout)
	responses := workbook.NewResponseRepository(store, cfg.ResponseSchema)

	return run(ctx, cmd, admin, responses, baseURL, out)
}

func run(ctx context.Context, cmd string, admin domain.AdminService, responses domain.ResponseRepository, baseURL string, out io.Writer) error {
	switch cmd {
	case "setup":
		if err := admin.SetupSheets(ctx); err != nil {
			return err
		}
		fmt.Fprintf(out, "headers written (responses schema %s)\n", responses.Schema())
		return nil

	case "family-ids":
		mapping, changed, err := admin.RegenerateFamilyIDs(ctx)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(mapping))
		for name := range mapping {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool { return mapping[names[i]] < mapping[names[j]] })
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%s\n", mapping[name], name)
		}
		tw.Flush()
		if changed == 0 {
			fmt.Fprintln(out, "all family IDs already up to date")
		} else {
			fmt.Fprintf(out, "%d rows updated\n", changed)
		}
		return nil

	case "links":
		links, err := admin.GenerateInviteLinks(ctx, baseURL)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, l := range links {
			fmt.Fprintf(tw, "%s\t%s\n", l.FamilyName, l.URL)
		}
		tw.Flush()
		fmt.Fprintf(out, "%d invite links written\n", len(links))
		return nil

	case "responses":
		rows, err := responses.ListRaw(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, row := range rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		tw.Flush()
		if len(rows) > 0 {
			fmt.Fprintf(out, "%d responses\n", len(rows)-1)
		}
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}
