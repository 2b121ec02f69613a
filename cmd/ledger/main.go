package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	appconfig "github.com/savaki/paper-a-day/pkg/config"
	"github.com/savaki/paper-a-day/pkg/dynamodb"
	"github.com/savaki/paper-a-day/pkg/models"
)

func main() {
	ctx := context.Background()

	// Record ID and user may also be passed by environment when run as a task
	id := flag.String("id", os.Getenv("RECORD_ID"), "read record id (Slack file id)")
	user := flag.String("user", os.Getenv("READ_USER"), "list every read recorded by this Slack user name")
	asJSON := flag.Bool("json", false, "print records as JSON lines")
	flag.Parse()

	if *id == "" && *user == "" {
		log.Fatal("one of -id (RECORD_ID) or -user (READ_USER) is required")
	}

	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ddbClient, err := dynamodb.NewClient(ctx, cfg.AWSRegion)
	if err != nil {
		log.Fatalf("Failed to create DynamoDB client: %v", err)
	}
	readRepo := dynamodb.NewReadRecordRepository(ddbClient, cfg.PapersTable)

	var records []*models.ReadRecord
	if *id != "" {
		rec, err := readRepo.GetByID(ctx, *id)
		if err != nil {
			log.Fatalf("Failed to get read record: %v", err)
		}
		records = append(records, rec)
	} else {
		records, err = readRepo.ListByUser(ctx, *user)
		if err != nil {
			log.Fatalf("Failed to list read records: %v", err)
		}
	}

	if err := printRecords(os.Stdout, records, *asJSON); err != nil {
		log.Fatalf("Failed to print read records: %v", err)
	}
}

func printRecords(w io.Writer, records []*models.ReadRecord, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tCHANNEL\tPAPER\tANON\tRECORDED")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n",
			rec.ID, rec.User, rec.Channel, rec.Paper, rec.AnonSubmission, rec.RecordedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
