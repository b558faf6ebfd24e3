// ABOUTME: Contact-form email validation: format, disposable domains, typos and MX records
// ABOUTME: Always produces a verdict; lookup failures are rejections, not errors

package email

import (
	"context"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

// DefaultLookupTimeout bounds the MX query
const DefaultLookupTimeout = 2500 * time.Millisecond

var formatPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// invisible characters pasted from rich text
var invisibles = strings.NewReplacer(
	"\u00a0", " ",
	"\u200b", " ",
	"\u200c", " ",
	"\u200d", " ",
	"\ufeff", " ",
)

// DisposableDomains are throwaway inbox providers
var DisposableDomains = map[string]bool{
	"mailinator.com":    true,
	"discard.email":     true,
	"10minutemail.com":  true,
	"tempmail.com":      true,
	"guerrillamail.com": true,
	"yopmail.com":       true,
	"trashmail.com":     true,
	"getnada.com":       true,
}

// KnownTypos map frequent misspellings to the intended domain
var KnownTypos = map[string]string{
	"gamil.com":   "gmail.com",
	"gnail.com":   "gmail.com",
	"gmil.com":    "gmail.com",
	"gmai.com":    "gmail.com",
	"hotnail.com": "hotmail.com",
	"hotmial.com": "hotmail.com",
	"outlok.com":  "outlook.com",
	"yaho.com":    "yahoo.com",
}

// TopProviders are the candidates for fuzzy suggestions, in preference order
var TopProviders = []string{
	"gmail.com",
	"hotmail.com",
	"outlook.com",
	"yahoo.com",
	"icloud.com",
	"live.com",
	"proton.me",
	"protonmail.com",
}

// MXResolver looks up mail exchangers. *net.Resolver satisfies it.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// Options configures the validator
type Options struct {
	// Resolver defaults to net.DefaultResolver
	Resolver MXResolver

	// LookupTimeout defaults to DefaultLookupTimeout
	LookupTimeout time.Duration
}

// EmailService implements interfaces.EmailValidator
type EmailService struct {
	deps interfaces.Dependencies
	opts Options
}

// NewEmailService creates a new email validation service instance
func NewEmailService(deps interfaces.Dependencies, opts Options) *EmailService {
	if opts.Resolver == nil {
		opts.Resolver = net.DefaultResolver
	}
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = DefaultLookupTimeout
	}
	deps.Logger = interfaces.LoggerOrNop(deps.Logger)
	deps.Metrics = interfaces.MetricsOrNop(deps.Metrics)
	return &EmailService{deps: deps, opts: opts}
}

// Validate checks address in order: empty, format, disposable, known typo,
// fuzzy typo, MX. The first failing check decides the verdict.
func (s *EmailService) Validate(ctx context.Context, address string) domain.EmailVerdict {
	clean := Sanitize(address)
	if clean == "" {
		return reject(domain.EmailEmpty, "")
	}
	if !formatPattern.MatchString(clean) {
		return reject(domain.EmailFormat, "")
	}

	at := strings.LastIndexByte(clean, '@')
	host := strings.ToLower(clean[at+1:])
	if host == "" {
		return reject(domain.EmailDomain, "")
	}

	if DisposableDomains[host] {
		return reject(domain.EmailDisposable, "")
	}
	if suggestion, ok := KnownTypos[host]; ok {
		return reject(domain.EmailTypo, suggestion)
	}
	if suggestion, ok := SuggestProvider(host); ok {
		return reject(domain.EmailTypo, suggestion)
	}

	if ctx.Err() != nil {
		return reject(domain.EmailError, "")
	}
	if !s.hasMX(ctx, host) {
		if ctx.Err() != nil {
			return reject(domain.EmailError, "")
		}
		return reject(domain.EmailNoMX, "")
	}

	return domain.EmailVerdict{Valid: true}
}

// Sanitize replaces invisible characters with spaces and trims
func Sanitize(address string) string {
	return strings.TrimSpace(invisibles.Replace(address))
}

// SuggestProvider returns the closest top provider when host is within one
// edit of it (two for hosts longer than ten characters) but not equal.
func SuggestProvider(host string) (string, bool) {
	host = strings.ToLower(host)
	best := ""
	bestDist := -1
	for _, provider := range TopProviders {
		d := levenshtein.ComputeDistance(host, provider)
		if bestDist < 0 || d < bestDist {
			best, bestDist = provider, d
		}
	}

	allowed := 1
	if len(host) > 10 {
		allowed = 2
	}
	if bestDist >= 0 && bestDist <= allowed && best != host {
		return best, true
	}
	return "", false
}

func (s *EmailService) hasMX(ctx context.Context, host string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.opts.LookupTimeout)
	defer cancel()

	start := time.Now()
	records, err := s.opts.Resolver.LookupMX(ctx, host)
	ok := err == nil && len(records) > 0
	s.deps.Metrics.ObserveUpstream("dns", err == nil, time.Since(start))

	if !ok {
		fields := map[string]interface{}{"domain": host}
		if err != nil {
			fields["error"] = err.Error()
		}
		s.deps.Logger.Debug("No MX records", fields)
	}
	return ok
}

func reject(reason domain.EmailRejection, suggestion string) domain.EmailVerdict {
	return domain.EmailVerdict{Valid: false, Reason: reason, Suggestion: suggestion}
}
