package extract

import (
	"embed"
	"fmt"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/lexicon.yaml
var lexiconYAML embed.FS

// Lexicon holds the FR/EN keyword tables driving the extraction heuristics.
// Anchors, denylists and plausibility bounds live here so they can be tuned
// (and tested) independently of the scanning code.
type Lexicon struct {
	Years struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"years"`

	Months struct {
		FR map[string]int `yaml:"fr"`
		EN map[string]int `yaml:"en"`
	} `yaml:"months"`

	DateAnchors struct {
		Closing           []string `yaml:"closing"`
		QuestionsDeadline []string `yaml:"questions_deadline"`
		SiteVisit         []string `yaml:"site_visit"`
		AddendaDeadline   []string `yaml:"addenda_deadline"`
		Opening           []string `yaml:"opening"`
	} `yaml:"date_anchors"`

	Buyer struct {
		Anchors  []string `yaml:"anchors"`
		Patterns []string `yaml:"patterns"`
		Shape    string   `yaml:"shape"`
		Denylist []string `yaml:"denylist"`
	} `yaml:"buyer"`

	Value struct {
		Anchors []string `yaml:"anchors"`
		Min     int64    `yaml:"min"`
		Max     int64    `yaml:"max"`
	} `yaml:"value"`

	ContractTypes []struct {
		Needle string `yaml:"needle"`
		Label  string `yaml:"label"`
	} `yaml:"contract_types"`

	LanguageAnchors   []string `yaml:"language_anchors"`
	ScopeAnchors      []string `yaml:"scope_anchors"`
	ContactAnchors    []string `yaml:"contact_anchors"`
	SubmissionAnchors []string `yaml:"submission_anchors"`
	SecurityAnchors   []string `yaml:"security_anchors"`
	Platforms         []string `yaml:"platforms"`

	Headings struct {
		Deliverables        []string `yaml:"deliverables"`
		EvaluationCriteria  []string `yaml:"evaluation_criteria"`
		SubmissionDocuments []string `yaml:"submission_documents"`
	} `yaml:"headings"`

	ListKeywords    []string `yaml:"list_keywords"`
	FitKeywords     []string `yaml:"fit_keywords"`
	ProfileKeywords []string `yaml:"profile_keywords"`

	buyerPatterns []*regexp.Regexp
	buyerShape    *regexp.Regexp
}

var (
	lexOnce    sync.Once
	defaultLex *Lexicon
	lexErr     error
)

// DefaultLexicon loads and compiles the embedded tables once.
func DefaultLexicon() *Lexicon {
	lexOnce.Do(func() {
		raw, err := lexiconYAML.ReadFile("config/lexicon.yaml")
		if err != nil {
			lexErr = fmt.Errorf("read embedded lexicon: %w", err)
			return
		}
		lex := &Lexicon{}
		if err := yaml.Unmarshal(raw, lex); err != nil {
			lexErr = fmt.Errorf("parse lexicon: %w", err)
			return
		}
		if err := lex.compile(); err != nil {
			lexErr = err
			return
		}
		defaultLex = lex
	})
	if lexErr != nil {
		// The lexicon is embedded; failing to parse it is a build defect,
		// not a runtime condition callers can recover from.
		panic(lexErr)
	}
	return defaultLex
}

func (l *Lexicon) compile() error {
	for _, p := range l.Buyer.Patterns {
		rx, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return fmt.Errorf("compile buyer pattern %q: %w", p, err)
		}
		l.buyerPatterns = append(l.buyerPatterns, rx)
	}
	rx, err := regexp.Compile("(?i)" + l.Buyer.Shape)
	if err != nil {
		return fmt.Errorf("compile buyer shape: %w", err)
	}
	l.buyerShape = rx
	return nil
}

func (l *Lexicon) yearPlausible(year int) bool {
	return year >= l.Years.Min && year <= l.Years.Max
}
