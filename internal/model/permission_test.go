package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCoversFullTaxonomy(t *testing.T) {
	catalog := Catalog()
	assert.Len(t, catalog, len(Actions)*len(Resources))

	seen := make(map[PermissionKey]struct{}, len(catalog))
	for _, p := range catalog {
		_, dup := seen[p.Key()]
		assert.Falsef(t, dup, "duplicate catalog entry %s %s", p.Action, p.Resource)
		seen[p.Key()] = struct{}{}
	}

	// Every enumerated pair is present
	for _, res := range Resources {
		for _, act := range Actions {
			_, ok := seen[PermissionKey{Action: act, Resource: res}]
			assert.Truef(t, ok, "missing catalog entry %s %s", act, res)
		}
	}
}

func TestParseAction(t *testing.T) {
	act, err := ParseAction("MANAGE")
	require.NoError(t, err)
	assert.Equal(t, ActionManage, act)

	_, err = ParseAction("manage")
	assert.Error(t, err)

	_, err = ParseAction("DESTROY")
	assert.Error(t, err)
}

func TestParseResource(t *testing.T) {
	res, err := ParseResource("SERVICE_ORDER")
	require.NoError(t, err)
	assert.Equal(t, ResourceServiceOrder, res)

	_, err = ParseResource("INVOICE")
	assert.Error(t, err)
}
