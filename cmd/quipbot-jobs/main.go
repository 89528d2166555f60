// Command quipbot-jobs validates a rule file and prints the normalized jobs
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"quipbot/internal/core/jobspec"
)

func main() {
	file := flag.String("file", "jobs.json", "path to the jobs JSON file")
	flag.Parse()

	jobs, err := jobspec.LoadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid jobs file: %v\n", err)
		os.Exit(1)
	}

	type view struct {
		ID             string   `json:"id"`
		Keywords       []string `json:"keywords"`
		MessageType    string   `json:"message_type"`
		Action         string   `json:"action"`
		Data           []string `json:"data"`
		Countdown      int      `json:"countdown"`
		MinutesTimeout int      `json:"minutes_timeout"`
	}

	out := make([]view, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, view{
			ID:             j.ID,
			Keywords:       j.Keywords,
			MessageType:    string(j.MessageType),
			Action:         string(j.Action),
			Data:           j.Data,
			Countdown:      j.Countdown,
			MinutesTimeout: j.MinutesTimeout,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%d job(s) ok\n", len(jobs))
}
