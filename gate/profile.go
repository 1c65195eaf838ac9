package gate

import "context"

// Profile is a named set of permissions, typically one per role.
type Profile interface {
	Name() string
	HasPermission(permission Permission) bool
}

// ProfileResolver maps a subject to its profile.
// Resolve returning (nil, nil) means the subject has no profile and is denied.
type ProfileResolver[U any] interface {
	Resolve(ctx context.Context, subject U) (Profile, error)
}

// StaticProfile is an in-memory Profile for static role configuration.
type StaticProfile struct {
	name        string
	permissions []Permission
}

// NewStaticProfile creates a profile granting the given permissions.
func NewStaticProfile(name string, permissions ...Permission) *StaticProfile {
	return &StaticProfile{name: name, permissions: permissions}
}

func (p *StaticProfile) Name() string { return p.name }

// HasPermission checks the requested permission against each granted one,
// honoring wildcards.
func (p *StaticProfile) HasPermission(requested Permission) bool {
	for _, perm := range p.permissions {
		if perm.Matches(requested) {
			return true
		}
	}
	return false
}

// StaticResolver is an in-memory resolver with fixed subject-to-profile
// assignments. Useful for tests and static role schemes.
type StaticResolver[U comparable] struct {
	profiles map[U]Profile
}

// NewStaticResolver creates an empty static resolver.
func NewStaticResolver[U comparable]() *StaticResolver[U] {
	return &StaticResolver[U]{profiles: make(map[U]Profile)}
}

// Set assigns a profile to a subject.
func (r *StaticResolver[U]) Set(subject U, profile Profile) {
	r.profiles[subject] = profile
}

// Resolve returns the assigned profile, or (nil, nil) when there is none.
func (r *StaticResolver[U]) Resolve(_ context.Context, subject U) (Profile, error) {
	if profile, ok := r.profiles[subject]; ok {
		return profile, nil
	}
	return nil, nil
}

// ResolverFunc adapts a function to the ProfileResolver interface.
type ResolverFunc[U any] func(ctx context.Context, subject U) (Profile, error)

func (f ResolverFunc[U]) Resolve(ctx context.Context, subject U) (Profile, error) {
	return f(ctx, subject)
}
