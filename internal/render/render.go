package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/models"
)

// Bucket is the section a listing files under when the document is split by
// job type.
type Bucket string

const (
	BucketInternship Bucket = "internship"
	BucketNewGrad    Bucket = "new-grad"
)

const (
	// TimestampPrefix marks the freshness line. Change detection ignores
	// lines carrying it.
	TimestampPrefix = "**Last updated:**"

	timestampLayout = "2006-01-02 15:04 UTC"

	documentTitle = "# Hardware Internships"
	documentIntro = "A curated list of hardware engineering internships."
	promoLine     = "✨ Preparing for hardware interviews? Check out [LogiCode](https://logi-code.com/)! ✨\n\n"

	internshipsHeading = "## Internships"
	newGradHeading     = "## New Grad"

	tableHeader = "| Company | Role | Location | Apply | Age |\n" +
		"|---------|------|----------|-------|-----|\n"

	emptyCell = "—"
)

// Options control document rendering. A zero Timestamp means "now".
type Options struct {
	SplitSections bool
	DefaultBucket Bucket
	Timestamp     time.Time
}

// cellEscaper folds newlines to spaces and escapes pipes inside table cells.
var cellEscaper = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "|", `\|`)

// ParseBucket maps user-facing bucket names onto a Bucket.
func ParseBucket(value string) (Bucket, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(BucketInternship), "intern", "internships":
		return BucketInternship, nil
	case string(BucketNewGrad), "new grad", "newgrad", "new-grads":
		return BucketNewGrad, nil
	default:
		return "", fmt.Errorf("unknown bucket: %q", value)
	}
}

// Document renders the complete markdown document for listings.
func Document(listings []models.Listing, opts Options) string {
	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	if opts.DefaultBucket == "" {
		opts.DefaultBucket = BucketNewGrad
	}

	var b strings.Builder
	b.WriteString(documentTitle + "\n\n")
	b.WriteString(documentIntro + "\n\n")
	fmt.Fprintf(&b, "%s %s\n\n", TimestampPrefix, ts.UTC().Format(timestampLayout))
	b.WriteString("---\n\n")

	if len(listings) == 0 {
		b.WriteString(noListingsLine("internship"))
		return b.String()
	}

	b.WriteString(promoLine)

	if opts.SplitSections {
		interns, grads := splitBuckets(listings, opts.DefaultBucket)
		writeSection(&b, internshipsHeading, "internship", interns)
		b.WriteString("\n")
		writeSection(&b, newGradHeading, "new grad", grads)
	} else {
		writeSection(&b, internshipsHeading, "internship", listings)
	}

	return b.String()
}

func writeSection(b *strings.Builder, heading string, noun string, listings []models.Listing) {
	b.WriteString(heading + "\n\n")
	if len(listings) == 0 {
		b.WriteString(noListingsLine(noun))
		return
	}
	b.WriteString(tableHeader)
	for _, l := range listings {
		b.WriteString(tableRow(l))
	}
}

func tableRow(l models.Listing) string {
	apply := emptyCell
	if l.ApplyLink != "" {
		apply = fmt.Sprintf(`<a href="%s" target="_blank">Apply</a>`, escapeLink(l.ApplyLink))
	}
	return fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
		escapeCell(l.Company),
		escapeCell(l.Role),
		escapeCell(l.Location),
		apply,
		escapeCell(l.Age),
	)
}

func noListingsLine(noun string) string {
	return fmt.Sprintf("*No %s listings available yet.*\n", noun)
}

// splitBuckets files each listing by its type field. Values naming both or
// neither bucket fall back to the configured default.
func splitBuckets(listings []models.Listing, fallback Bucket) ([]models.Listing, []models.Listing) {
	var interns, grads []models.Listing
	for _, l := range listings {
		switch classify(l, fallback) {
		case BucketInternship:
			interns = append(interns, l)
		default:
			grads = append(grads, l)
		}
	}
	return interns, grads
}

func classify(l models.Listing, fallback Bucket) Bucket {
	jobType := strings.ToLower(l.JobType)
	hasIntern := strings.Contains(jobType, "intern")
	hasGrad := strings.Contains(jobType, "grad")
	switch {
	case hasIntern && !hasGrad:
		return BucketInternship
	case hasGrad && !hasIntern:
		return BucketNewGrad
	default:
		return fallback
	}
}

func escapeCell(value string) string {
	return cellEscaper.Replace(strings.TrimSpace(value))
}

func escapeLink(link string) string {
	return strings.ReplaceAll(link, "|", "%7C")
}
