package retrieval

import (
	"sort"
	"strings"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/config"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/knowledge"
)

// Result holds the top retrieval matches in rank order, most relevant first.
// Contents[i] and Sources[i] describe the same document.
type Result struct {
	Contents []string
	Sources  []string
}

func (r Result) Empty() bool {
	return len(r.Contents) == 0
}

type scoredDocument struct {
	doc   knowledge.Document
	score float64
}

// Retriever ranks corpus documents against a query with keyword scoring.
// Pure computation over a fixed corpus - no I/O, safe for concurrent use.
type Retriever struct {
	docs []knowledge.Document
}

func New(docs []knowledge.Document) *Retriever {
	return &Retriever{docs: docs}
}

func Default() *Retriever {
	return New(knowledge.All())
}

// Retrieve scores every document against the query terms and returns at
// most RetrievalTopK matches with positive scores. An empty query or a
// query with no matching terms yields an empty Result, not an error.
func (r *Retriever) Retrieve(query string) Result {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return Result{}
	}

	var scored []scoredDocument
	for _, doc := range r.docs {
		score := scoreDocument(doc, terms)
		if score > 0 {
			scored = append(scored, scoredDocument{doc: doc, score: score})
		}
	}

	// Stable sort keeps corpus order for equal scores - deliberate tie-break
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > config.RetrievalTopK {
		scored = scored[:config.RetrievalTopK]
	}

	result := Result{}
	for _, sd := range scored {
		result.Contents = append(result.Contents, "["+sd.doc.Title+"] "+sd.doc.Content)
		result.Sources = append(result.Sources, sd.doc.Source)
	}
	return result
}

// scoreDocument sums per-term keyword hits: content counts once, title
// counts double, a category containing the term adds a flat bonus.
// Occurrence counting is non-overlapping substring count.
func scoreDocument(doc knowledge.Document, terms []string) float64 {
	content := strings.ToLower(doc.Content)
	title := strings.ToLower(doc.Title)
	category := strings.ToLower(doc.Category)

	var score float64
	for _, term := range terms {
		score += float64(strings.Count(content, term))
		score += config.TitleWeight * float64(strings.Count(title, term))
		if strings.Contains(category, term) {
			score += config.CategoryWeight
		}
	}
	return score
}
