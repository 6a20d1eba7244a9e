package store

import (
	"context"
	"errors"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type closer interface {
	Close() error
}

// WithRenewalTokens returns base with its renewal credential repository
// replaced by rt. Transactions opened on the result keep using rt, which is
// therefore not covered by the SQL transaction.
func WithRenewalTokens(base Store, rt RenewalTokens) Store {
	return &overlayStore{Store: base, rt: rt}
}

type overlayStore struct {
	Store
	rt RenewalTokens
}

func (o *overlayStore) RenewalTokens() RenewalTokens { return o.rt }

func (o *overlayStore) Tx(ctx context.Context) (Tx, error) {
	tx, err := o.Store.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &overlayTx{txBase: tx, rt: o.rt}, nil
}

func (o *overlayStore) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	return o.Store.WithTx(ctx, func(tx Tx) error {
		return fn(&overlayTx{txBase: tx, rt: o.rt})
	})
}

func (o *overlayStore) Ping(ctx context.Context) error {
	if err := o.Store.Ping(ctx); err != nil {
		return err
	}
	if p, ok := o.rt.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (o *overlayStore) Close() error {
	var errs []error
	if c, ok := o.rt.(closer); ok {
		errs = append(errs, c.Close())
	}
	errs = append(errs, o.Store.Close())
	return errors.Join(errs...)
}

// txBase names the embedded Tx so it does not shadow the promoted Tx method.
type txBase = Tx

type overlayTx struct {
	txBase
	rt RenewalTokens
}

var _ Tx = (*overlayTx)(nil)

func (t *overlayTx) RenewalTokens() RenewalTokens { return t.rt }
