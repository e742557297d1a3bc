package source

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/models"
)

const boardDoc = `# Hardware Jobs 2026

Collected listings, updated daily.

## 🔧 Hardware Engineering

<table>
<tbody>
<tr>
<td><strong><a href="https://acme.example.com">Acme Robotics</a></strong></td>
<td>Hardware Engineering Intern</td>
<td>Austin, TX</td>
<td><a href="https://acme.example.com/apply"><img src="https://img.example.com/apply.svg" alt="Apply"></a></td>
<td>3d</td>
</tr>
<tr>
<td><strong><a href="https://beta.example.com">Beta Dynamics</a></strong> 🔒</td>
<td>ASIC Design Intern</td>
<td>Santa Clara, CA</td>
<td>🔒</td>
<td>9d</td>
</tr>
<tr>
<td>↳</td>
<td>Firmware Intern</td>
<td>Remote</td>
<td><a href="https://beta.example.com/fw">Apply</a></td>
<td>5d</td>
</tr>
<tr>
<td><strong><a href="/gamma">Gamma &amp; Sons</a></strong></td>
<td>Validation
Intern</td>
<td>San Jose, CA</td>
<td><a href="/gamma/apply">Apply</a></td>
<td>1d</td>
</tr>
<tr>
<td>Delta Labs</td>
<td>Test Intern</td>
<td>Denver, CO</td>
<td><a href="https://delta.example.com/apply">Apply</a></td>
<td>2d</td>
</tr>
<tr>
<td><strong><a href="https://foxtrot.example.com">Foxtrot Space</a></strong></td>
<td>Avionics Intern</td>
<td>Hawthorne, CA</td>
<td>Email résumé to apply</td>
<td>6d</td>
</tr>
<tr>
<td><strong><a href="https://echo.example.com">Echo Micro</a></strong></td>
<td>PCB Intern</td>
<td>Boston, MA</td>
</tr>
</tbody>
</table>

## 💻 Software Engineering

<tr>
<td><a href="https://soft.example.com">Softco</a></td>
<td>SWE Intern</td>
<td>NYC</td>
<td><a href="https://soft.example.com/apply">Apply</a></td>
<td>2d</td>
</tr>
`

func TestParseBoardDocument(t *testing.T) {
	section, err := extractSection(boardDoc, "## 🔧 Hardware Engineering")
	if err != nil {
		t.Fatalf("extractSection() error = %v", err)
	}

	got := parseBoardRows("board", "https://github.example.com/jobs/README.md", section, true)
	want := []models.Listing{
		{
			Company:   "Acme Robotics",
			Role:      "Hardware Engineering Intern",
			Location:  "Austin, TX",
			ApplyLink: "https://acme.example.com/apply",
			Age:       "3d",
			Source:    "board",
		},
		{
			Company:   "Gamma & Sons",
			Role:      "Validation Intern",
			Location:  "San Jose, CA",
			ApplyLink: "https://github.example.com/gamma/apply",
			Age:       "1d",
			Source:    "board",
		},
		{
			Company:  "Foxtrot Space",
			Role:     "Avionics Intern",
			Location: "Hawthorne, CA",
			Age:      "6d",
			Source:   "board",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseBoardRows() = %#v, want %#v", got, want)
	}
}

func TestParseBoardRowsSkipsClosedAndContinuation(t *testing.T) {
	section, err := extractSection(boardDoc, "## 🔧 Hardware Engineering")
	if err != nil {
		t.Fatalf("extractSection() error = %v", err)
	}

	for _, l := range parseBoardRows("board", "https://example.com", section, true) {
		if l.Company == "Beta Dynamics" {
			t.Fatalf("closed listing should be skipped: %#v", l)
		}
		if l.Role == "Firmware Intern" {
			t.Fatalf("continuation row should be skipped: %#v", l)
		}
	}
}

func TestParseBoardRowsDropsLinklessCompanyCell(t *testing.T) {
	section := `<tr><td>Delta Labs</td><td>Test Intern</td><td>Denver, CO</td><td><a href="https://delta.example.com">Apply</a></td><td>2d</td></tr>`
	got := parseBoardRows("board", "https://example.com", section, true)
	if len(got) != 0 {
		t.Fatalf("expected no listings for a company cell without a link, got %#v", got)
	}
}

func TestParseBoardRowsWithoutAgeColumn(t *testing.T) {
	section := `<tr><td><a href="https://zeta.example.com">Zeta</a></td><td>NPI Intern</td><td>Remote</td><td><a href="https://zeta.example.com/apply">Apply</a></td></tr>`

	got := parseBoardRows("board", "https://example.com", section, false)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].Age != "" {
		t.Fatalf("Age = %q, want empty", got[0].Age)
	}

	if withAge := parseBoardRows("board", "https://example.com", section, true); len(withAge) != 0 {
		t.Fatalf("four-cell row should be dropped when an age column is expected, got %#v", withAge)
	}
}

func TestExtractSectionMissing(t *testing.T) {
	_, err := extractSection("# Jobs\n\nNothing here.\n", "## 🔧 Hardware Engineering")
	if err == nil {
		t.Fatalf("extractSection() error = nil, want error")
	}
	if !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("extractSection() error = %v, want ErrSectionNotFound", err)
	}
}

func TestExtractSectionRunsToEndOfDocument(t *testing.T) {
	doc := "intro\n\n## 🔧 Hardware Engineering\n\n<tr><td>tail</td></tr>\n"
	section, err := extractSection(doc, "## 🔧 Hardware Engineering")
	if err != nil {
		t.Fatalf("extractSection() error = %v", err)
	}
	if !strings.Contains(section, "<tr><td>tail</td></tr>") {
		t.Fatalf("section should include the document tail, got %q", section)
	}
}

func TestExtractSectionStopsAtNextHeader(t *testing.T) {
	section, err := extractSection(boardDoc, "## 🔧 Hardware Engineering")
	if err != nil {
		t.Fatalf("extractSection() error = %v", err)
	}
	if strings.Contains(section, "Softco") {
		t.Fatalf("section should stop before the next header, got %q", section)
	}
}
