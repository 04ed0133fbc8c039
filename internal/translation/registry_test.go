package translation

import "testing"

func TestRegistryResolvesDefaultForEmptyName(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{name: "stub"}
	registry := NewRegistry("stub")
	if err := registry.Register(provider); err != nil {
		t.Fatalf("register provider: %v", err)
	}

	resolved, err := registry.Provider("")
	if err != nil {
		t.Fatalf("resolve default provider: %v", err)
	}
	if resolved.Name() != "stub" {
		t.Fatalf("unexpected provider: %q", resolved.Name())
	}
}

func TestRegistryRejectsUnknownProvider(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("stub")
	if err := registry.Register(&stubProvider{name: "stub"}); err != nil {
		t.Fatalf("register provider: %v", err)
	}

	if _, err := registry.Provider("nope"); err == nil {
		t.Fatalf("expected unknown provider to fail")
	}
}

func TestRegistryNormalizesNames(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(" STUB ")
	if err := registry.Register(&stubProvider{name: "Stub"}); err != nil {
		t.Fatalf("register provider: %v", err)
	}

	resolved, err := registry.Provider(" stub ")
	if err != nil {
		t.Fatalf("resolve provider: %v", err)
	}
	if resolved == nil {
		t.Fatalf("expected a provider")
	}
	if registry.DefaultProvider() != "stub" {
		t.Fatalf("unexpected default: %q", registry.DefaultProvider())
	}
}

func TestNewRegistryFromEnvSelectsConfiguredProvider(t *testing.T) {
	t.Setenv(ProviderEnvVar, "local")
	t.Setenv("TRANSLATION_MODEL", "custom/model")

	registry := NewRegistryFromEnv()
	if got := registry.DefaultProvider(); got != "local" {
		t.Fatalf("default provider = %q, want local", got)
	}

	provider, err := registry.Provider("")
	if err != nil {
		t.Fatalf("resolve default provider: %v", err)
	}
	local, ok := provider.(*LocalProvider)
	if !ok {
		t.Fatalf("default provider has type %T, want *LocalProvider", provider)
	}
	if got := local.ModelName(); got != "custom/model" {
		t.Fatalf("model = %q, want custom/model", got)
	}
}

func TestNewRegistryFromEnvFallsBackOnUnknownProvider(t *testing.T) {
	t.Setenv(ProviderEnvVar, "nope")

	registry := NewRegistryFromEnv()
	if got := registry.DefaultProvider(); got != DefaultProviderName {
		t.Fatalf("default provider = %q, want %q", got, DefaultProviderName)
	}
}
