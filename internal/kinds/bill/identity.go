// Package bill handles the BILLS collection: congressional bill packages
// staged as XML files named like BILLS-119thCongress-HR1.xml.
package bill

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

// Kind is the registered kind code for bills.
const Kind = "bill"

// Collection is the source collection name carried into provenance.
const Collection = "BILLS"

// Pattern matches staged bill filenames. Groups: congress number, type
// code, document number, optional published date (YYYYMMDD).
var Pattern = regexp.MustCompile(`^BILLS-(\d+)thCongress-([A-Za-z]+)(\d+)(?:-(\d{8}))?\.xml$`)

// publishedLayout is the compact date format used in filenames.
const publishedLayout = "20060102"

// Identify converts a Pattern match into an artifact identity.
// The published timestamp comes from the optional filename group, falling
// back to the file's modification time.
func Identify(m []string, modTime time.Time) (domain.ArtifactIdentity, error) {
	congress, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.ArtifactIdentity{}, &domain.ExtractionError{
			Filename: m[0], Reason: "congress number is not numeric",
		}
	}
	number, err := strconv.Atoi(m[3])
	if err != nil {
		return domain.ArtifactIdentity{}, &domain.ExtractionError{
			Filename: m[0], Reason: "document number is not numeric",
		}
	}

	published := modTime
	if m[4] != "" {
		t, err := time.Parse(publishedLayout, m[4])
		if err != nil {
			return domain.ArtifactIdentity{}, &domain.ExtractionError{
				Filename: m[0], Reason: "published date is not YYYYMMDD",
			}
		}
		published = t
	}

	return domain.ArtifactIdentity{
		Kind:       Kind,
		Collection: Collection,
		Congress:   congress,
		DocType:    strings.ToUpper(m[2]),
		Number:     number,
		Published:  published,
	}, nil
}
