package eval

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reviewlens/reviewlens/internal"
)

var log = internal.GetLogger()

// Record is one labeled evaluation example: a query, the response a correct
// system is expected to produce, and the review texts that should be
// retrieved for it.
type Record struct {
	Query            string   `json:"query"`
	ExpectedResponse string   `json:"expected_response"`
	RetrievedDocs    []string `json:"retrieved_docs"`
}

// LoadDataset reads a JSON evaluation dataset from path.
func LoadDataset(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s contains no records", path)
	}

	log.Debugf("Loaded %d evaluation records from %s", len(records), path)
	return records, nil
}
