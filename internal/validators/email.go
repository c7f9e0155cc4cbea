package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// EmailDomainResolves confere se o domínio do e-mail recebe correio (MX)
// ou ao menos resolve para algum endereço. Falha de DNS conta como inválido.
func EmailDomainResolves(ctx context.Context, email string) bool {
	_, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || domain == "" || strings.Contains(domain, "@") {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, domain)
	return err == nil && len(addrs) > 0
}
