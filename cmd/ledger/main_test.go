package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/savaki/paper-a-day/pkg/models"
)

func TestPrintRecordsTable(t *testing.T) {
	rec := models.NewReadRecord(models.NewPaper("F1", "attention.pdf"), "alice", "general", "{}", false)

	var buf bytes.Buffer
	if err := printRecords(&buf, []*models.ReadRecord{rec}, false); err != nil {
		t.Fatalf("printRecords() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header plus one record:\n%s", len(lines), buf.String())
	}

	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("header = %q", lines[0])
	}

	for _, want := range []string{"F1", "alice", "general", "attention.pdf", "false"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("record line %q missing %q", lines[1], want)
		}
	}
}

func TestPrintRecordsJSON(t *testing.T) {
	records := []*models.ReadRecord{
		models.NewReadRecord(models.NewPaper("F1", "attention.pdf"), "alice", "general", "{}", false),
		models.NewReadRecord(models.NewPaper("F2", "bert.pdf"), "alice", "directmessage", "{}", true),
	}

	var buf bytes.Buffer
	if err := printRecords(&buf, records, true); err != nil {
		t.Fatalf("printRecords() error = %v", err)
	}

	dec := json.NewDecoder(&buf)
	count := 0
	for dec.More() {
		var rec models.ReadRecord
		if err := dec.Decode(&rec); err != nil {
			t.Fatalf("decode line %d: %v", count, err)
		}
		count++
	}

	if count != len(records) {
		t.Errorf("decoded %d records, want %d", count, len(records))
	}
}
