// Package cache holds read-through caches in front of the repository ports.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
)

// CachedDirectory keeps recently resolved accounts and payees in memory. Only hits are cached,
// so a category created after a failed lookup is visible on the next request. Edits made
// directly in the directory become visible once the entry expires.
type CachedDirectory struct {
	next     portsrepo.DirectoryReader
	accounts *expirable.LRU[string, domain.Account]
	payees   *expirable.LRU[string, domain.Payee]
}

// NewCachedDirectory wraps next with two LRUs of the given size and time to live.
func NewCachedDirectory(next portsrepo.DirectoryReader, size int, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		next:     next,
		accounts: expirable.NewLRU[string, domain.Account](size, nil, ttl),
		payees:   expirable.NewLRU[string, domain.Payee](size, nil, ttl),
	}
}

var _ portsrepo.DirectoryReader = (*CachedDirectory)(nil)

func cacheKey(companyID, id string) string {
	return companyID + "|" + id
}

// FindAccount implements portsrepo.DirectoryReader
func (c *CachedDirectory) FindAccount(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	if a, ok := c.accounts.Get(cacheKey(companyID, accountID)); ok {
		return &a, nil
	}
	a, err := c.next.FindAccount(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}
	c.accounts.Add(cacheKey(companyID, accountID), *a)
	return a, nil
}

// FindAccountsByIDs implements portsrepo.DirectoryReader
func (c *CachedDirectory) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	found, misses := lookup(c.accounts, companyID, accountIDs)
	if len(misses) == 0 {
		return found, nil
	}
	fetched, err := c.next.FindAccountsByIDs(ctx, companyID, misses)
	if err != nil {
		return nil, err
	}
	for id, a := range fetched {
		c.accounts.Add(cacheKey(companyID, id), a)
		found[id] = a
	}
	return found, nil
}

// FindPayee implements portsrepo.DirectoryReader
func (c *CachedDirectory) FindPayee(ctx context.Context, companyID, payeeID string) (*domain.Payee, error) {
	if p, ok := c.payees.Get(cacheKey(companyID, payeeID)); ok {
		return &p, nil
	}
	p, err := c.next.FindPayee(ctx, companyID, payeeID)
	if err != nil {
		return nil, err
	}
	c.payees.Add(cacheKey(companyID, payeeID), *p)
	return p, nil
}

// FindPayeesByIDs implements portsrepo.DirectoryReader
func (c *CachedDirectory) FindPayeesByIDs(ctx context.Context, companyID string, payeeIDs []string) (map[string]domain.Payee, error) {
	found, misses := lookup(c.payees, companyID, payeeIDs)
	if len(misses) == 0 {
		return found, nil
	}
	fetched, err := c.next.FindPayeesByIDs(ctx, companyID, misses)
	if err != nil {
		return nil, err
	}
	for id, p := range fetched {
		c.payees.Add(cacheKey(companyID, id), p)
		found[id] = p
	}
	return found, nil
}

// ListAccounts implements portsrepo.DirectoryReader. Listings always go to the store.
func (c *CachedDirectory) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	return c.next.ListAccounts(ctx, companyID)
}

func lookup[V any](lru *expirable.LRU[string, V], companyID string, ids []string) (map[string]V, []string) {
	found := make(map[string]V, len(ids))
	var misses []string
	for _, id := range ids {
		if v, ok := lru.Get(cacheKey(companyID, id)); ok {
			found[id] = v
			continue
		}
		misses = append(misses, id)
	}
	return found, misses
}
