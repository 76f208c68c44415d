// Package law handles the PLAW collection: enacted public law packages
// staged as XML files named like PLAW-119publ5.xml.
package law

import (
	"regexp"
	"strconv"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

// Kind is the registered kind code for public laws.
const Kind = "law"

// Collection is the source collection name carried into provenance.
const Collection = "PLAW"

// DocType is fixed for public laws; the filename carries no type group.
const DocType = "PUB"

// Pattern matches staged law filenames. Groups: congress number, law
// number, optional published date (YYYYMMDD).
var Pattern = regexp.MustCompile(`^PLAW-(\d+)publ(\d+)(?:-(\d{8}))?\.xml$`)

const publishedLayout = "20060102"

// Identify converts a Pattern match into an artifact identity.
func Identify(m []string, modTime time.Time) (domain.ArtifactIdentity, error) {
	congress, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.ArtifactIdentity{}, &domain.ExtractionError{
			Filename: m[0], Reason: "congress number is not numeric",
		}
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return domain.ArtifactIdentity{}, &domain.ExtractionError{
			Filename: m[0], Reason: "law number is not numeric",
		}
	}

	published := modTime
	if m[3] != "" {
		t, err := time.Parse(publishedLayout, m[3])
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
		DocType:    DocType,
		Number:     number,
		Published:  published,
	}, nil
}
