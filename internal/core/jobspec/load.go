package jobspec

import (
	"encoding/json"
	"os"

	perr "quipbot/internal/platform/errors"
)

// Load validates raw records in order and fails fast on the first bad one
// a malformed rule set should never reach traffic, so there is no lenient mode
func Load(records []Record) ([]Job, error) {
	jobs := make([]Job, 0, len(records))
	for i, rec := range records {
		job, err := Validate(rec)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeValidation, "job record %d", i)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// LoadFile reads a JSON array of raw records from path and validates them
func LoadFile(path string) ([]Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read jobs file %s", path)
	}
	var records []Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "parse jobs file %s", path)
	}
	return Load(records)
}
