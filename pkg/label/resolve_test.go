package label_test

import (
	"errors"
	"testing"

	"jvmrules.build/pkg/label"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResolver struct {
	repoMapping map[string]string
	rootModule  string
}

func (r staticResolver) GetCanonicalRepo(fromCanonicalRepo label.CanonicalRepo, toApparentRepo label.ApparentRepo) (*label.CanonicalRepo, error) {
	if toApparentRepo.String() == "broken" {
		return nil, errors.New("repo mapping is unavailable")
	}
	canonicalRepo, ok := r.repoMapping[toApparentRepo.String()]
	if !ok {
		return nil, nil
	}
	repo := label.MustNewCanonicalRepo(canonicalRepo)
	return &repo, nil
}

func (r staticResolver) GetRootModule() (label.Module, error) {
	if r.rootModule == "" {
		return label.Module{}, errors.New("no root module")
	}
	return label.NewModule(r.rootModule)
}

func TestCanonicalize(t *testing.T) {
	resolver := staticResolver{
		repoMapping: map[string]string{
			"bazel_tools": "bazel_tools+",
			"rules_java":  "rules_java+",
		},
		rootModule: "app",
	}
	fromRepo := label.MustNewCanonicalRepo("app+")

	t.Run("AlreadyCanonical", func(t *testing.T) {
		l, err := label.Canonicalize[label.CanonicalLabel](resolver, fromRepo, label.MustNewApparentLabel("@@other+//a:b"))
		require.NoError(t, err)
		assert.Equal(t, "@@other+//a:b", l.String())
	})

	t.Run("ApparentRepo", func(t *testing.T) {
		l, err := label.Canonicalize[label.CanonicalLabel](resolver, fromRepo, label.MustNewApparentLabel("@bazel_tools//third_party/java/jdk:jdk_launcher"))
		require.NoError(t, err)
		assert.Equal(t, "@@bazel_tools+//third_party/java/jdk:jdk_launcher", l.String())
	})

	t.Run("ApparentRepoShorthand", func(t *testing.T) {
		l, err := label.Canonicalize[label.CanonicalLabel](resolver, fromRepo, label.MustNewApparentLabel("@rules_java"))
		require.NoError(t, err)
		assert.Equal(t, "@@rules_java+//:rules_java", l.String())
	})

	t.Run("RootModule", func(t *testing.T) {
		l, err := label.Canonicalize[label.CanonicalLabel](resolver, fromRepo, label.MustNewApparentLabel("@@//tools:launcher"))
		require.NoError(t, err)
		assert.Equal(t, "@@app+//tools:launcher", l.String())
	})

	t.Run("UnknownRepo", func(t *testing.T) {
		_, err := label.Canonicalize[label.CanonicalLabel](resolver, fromRepo, label.MustNewApparentLabel("@nonexistent//a:b"))
		require.EqualError(t, err, "unknown apparent repo @nonexistent referenced by repo @@app+")
	})

	t.Run("ResolverFailure", func(t *testing.T) {
		_, err := label.Canonicalize[label.CanonicalLabel](resolver, fromRepo, label.MustNewApparentLabel("@broken//a:b"))
		require.EqualError(t, err, "failed to resolve apparent repo \"broken\": repo mapping is unavailable")
	})

	t.Run("NoRootModule", func(t *testing.T) {
		_, err := label.Canonicalize[label.CanonicalLabel](staticResolver{}, fromRepo, label.MustNewApparentLabel("@@//a:b"))
		require.EqualError(t, err, "failed to resolve root module: no root module")
	})
}
