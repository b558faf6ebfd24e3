package email

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

// mockResolver is a mock implementation of MXResolver
type mockResolver struct {
	lookups    []string
	lookupFunc func(ctx context.Context, name string) ([]*net.MX, error)
}

func (m *mockResolver) LookupMX(ctx context.Context, name string) ([]*net.MX, error) {
	m.lookups = append(m.lookups, name)
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, name)
	}
	return []*net.MX{{Host: "mx." + name, Pref: 10}}, nil
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    domain.EmailVerdict
	}{
		{"valid", "ana@gmail.com", domain.EmailVerdict{Valid: true}},
		{"invisible padding", "\u00a0ana@empresa.com.br\u200b", domain.EmailVerdict{Valid: true}},
		{"empty", "   ", domain.EmailVerdict{Reason: domain.EmailEmpty}},
		{"only zero width", "\ufeff\u200d", domain.EmailVerdict{Reason: domain.EmailEmpty}},
		{"no at", "ana.gmail.com", domain.EmailVerdict{Reason: domain.EmailFormat}},
		{"short tld", "ana@gmail.c", domain.EmailVerdict{Reason: domain.EmailFormat}},
		{"inner space", "ana maria@gmail.com", domain.EmailVerdict{Reason: domain.EmailFormat}},
		{"disposable", "x@Mailinator.com", domain.EmailVerdict{Reason: domain.EmailDisposable}},
		{"known typo", "ana@gmil.com", domain.EmailVerdict{Reason: domain.EmailTypo, Suggestion: "gmail.com"}},
		{"fuzzy typo", "ana@gmaill.com", domain.EmailVerdict{Reason: domain.EmailTypo, Suggestion: "gmail.com"}},
		{"fuzzy long domain", "ana@protonmal.co", domain.EmailVerdict{Reason: domain.EmailTypo, Suggestion: "protonmail.com"}},
		{"far from providers", "ana@catbytes.dev", domain.EmailVerdict{Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewEmailService(interfaces.Dependencies{}, Options{Resolver: &mockResolver{}})

			assert.Equal(t, tt.want, service.Validate(context.Background(), tt.address))
		})
	}
}

func TestValidate_TypoBlocksEvenWithMX(t *testing.T) {
	resolver := &mockResolver{}
	service := NewEmailService(interfaces.Dependencies{}, Options{Resolver: resolver})

	verdict := service.Validate(context.Background(), "ana@hotmial.com")

	assert.Equal(t, domain.EmailTypo, verdict.Reason)
	assert.Equal(t, "hotmail.com", verdict.Suggestion)
	assert.Empty(t, resolver.lookups, "MX lookup is the last step")
}

func TestValidate_NoMX(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(ctx context.Context, name string) ([]*net.MX, error)
	}{
		{"not found", func(ctx context.Context, name string) ([]*net.MX, error) {
			return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
		}},
		{"empty answer", func(ctx context.Context, name string) ([]*net.MX, error) {
			return nil, nil
		}},
		{"resolver failure", func(ctx context.Context, name string) ([]*net.MX, error) {
			return nil, errors.New("server misbehaving")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &mockResolver{lookupFunc: tt.lookup}
			service := NewEmailService(interfaces.Dependencies{}, Options{Resolver: resolver})

			verdict := service.Validate(context.Background(), "contato@dominio-inexistente.com.br")

			assert.Equal(t, domain.EmailVerdict{Reason: domain.EmailNoMX}, verdict)
			assert.Equal(t, []string{"dominio-inexistente.com.br"}, resolver.lookups)
		})
	}
}

func TestValidate_LookupTimeout(t *testing.T) {
	resolver := &mockResolver{
		lookupFunc: func(ctx context.Context, name string) ([]*net.MX, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	service := NewEmailService(interfaces.Dependencies{}, Options{Resolver: resolver, LookupTimeout: 20 * time.Millisecond})

	start := time.Now()
	verdict := service.Validate(context.Background(), "ana@lento.com.br")

	assert.Equal(t, domain.EmailNoMX, verdict.Reason)
	assert.Less(t, time.Since(start), time.Second)
}

func TestValidate_CancelledContext(t *testing.T) {
	resolver := &mockResolver{}
	service := NewEmailService(interfaces.Dependencies{}, Options{Resolver: resolver})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	verdict := service.Validate(ctx, "ana@empresa.com.br")

	assert.Equal(t, domain.EmailError, verdict.Reason)
	assert.Empty(t, resolver.lookups)
}

func TestSuggestProvider(t *testing.T) {
	tests := []struct {
		host string
		want string
		ok   bool
	}{
		{"gmail.com", "", false},
		{"gmal.com", "gmail.com", true},
		{"yahooo.com", "yahoo.com", true},
		{"outlook.cmo", "outlook.com", true},
		{"icloud.co", "icloud.com", true},
		{"empresa.com.br", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			got, ok := SuggestProvider(tt.host)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
