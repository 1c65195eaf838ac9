// Package gate provides a Gate/Policy authorization system: a Gate resolves a
// subject to a role profile, checks the profile's permissions, and then
// consults an optional per-resource policy. The package has no dependency on
// domain models; the subject type is generic:
//   - Gate[uint] for user-ID based auth
//   - Gate[Identity] for full identity struct based auth
package gate

import "context"

// Policy defines resource-level authorization rules for one resource type.
// U is the subject type. For list/create checks resource may be nil.
type Policy[U any] interface {
	Can(ctx context.Context, subject U, action Action, resource any) bool
}

// Gate is the central authorization checkpoint. It combines profile
// permissions (global, role-level) with registered resource policies
// (per-record, e.g. ownership). U must be comparable so the zero value can
// stand for "no subject".
type Gate[U comparable] struct {
	resolver ProfileResolver[U]
	policies map[string]Policy[U]
}

// New creates a Gate backed by the given profile resolver.
func New[U comparable](resolver ProfileResolver[U]) *Gate[U] {
	return &Gate[U]{
		resolver: resolver,
		policies: make(map[string]Policy[U]),
	}
}

// Register adds a resource policy for a resource type (e.g. "payment").
// Overwrites any existing policy for that type.
func (g *Gate[U]) Register(resourceType string, p Policy[U]) {
	g.policies[resourceType] = p
}

// Authorize checks, in order:
//  1. the subject is non-zero,
//  2. the subject's profile grants "resourceType:action",
//  3. when resource is non-nil and a policy is registered, the policy allows it.
//
// Returns nil when authorized, ErrUnauthorized otherwise.
func (g *Gate[U]) Authorize(ctx context.Context, subject U, action Action, resourceType string, resource any) error {
	var zero U
	if subject == zero {
		return ErrUnauthorized
	}

	profile, err := g.resolver.Resolve(ctx, subject)
	if err != nil || profile == nil {
		return ErrUnauthorized
	}
	if !profile.HasPermission(NewPermission(resourceType, action)) {
		return ErrUnauthorized
	}

	if resource != nil {
		if p, ok := g.policies[resourceType]; ok {
			if !p.Can(ctx, subject, action, resource) {
				return ErrUnauthorized
			}
		}
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
func (g *Gate[U]) Can(ctx context.Context, subject U, action Action, resourceType string, resource any) bool {
	return g.Authorize(ctx, subject, action, resourceType, resource) == nil
}

// CanProfile checks only the profile permission, skipping resource policies.
// Useful to decide whether a whole view or action should be offered at all.
func (g *Gate[U]) CanProfile(ctx context.Context, subject U, action Action, resourceType string) bool {
	var zero U
	if subject == zero {
		return false
	}
	profile, err := g.resolver.Resolve(ctx, subject)
	if err != nil || profile == nil {
		return false
	}
	return profile.HasPermission(NewPermission(resourceType, action))
}

// Narrow filters a collection down to the elements the subject may view,
// preserving the input order. An element is kept iff Authorize with
// ActionView passes for it, so a registered resource policy decides
// per-record visibility while the profile check gates the collection as a
// whole. A zero subject narrows everything away.
func Narrow[U comparable, T any](ctx context.Context, g *Gate[U], subject U, resourceType string, items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if g.Authorize(ctx, subject, ActionView, resourceType, it) == nil {
			out = append(out, it)
		}
	}
	return out
}
