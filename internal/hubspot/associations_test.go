package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociationTypeID(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"contacts", "companies", 1},
		{"companies", "contacts", 2},
		{"deals", "tickets", 27},
		{"notes", "deals", 214},
		{"tasks", "contacts", 204},
		{"contacts", "bogus", 0},
		{"bogus", "contacts", 0},
	}
	for _, tc := range tests {
		t.Run(tc.from+"_"+tc.to, func(t *testing.T) {
			assert.Equal(t, tc.want, associationTypeID(tc.from, tc.to))
		})
	}
}

func TestListAssociations(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SetAccessToken("pat-x"))

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crm/v4/objects/contacts/101/associations/companies", r.URL.Path)
		fmt.Fprint(w, `{
			"results": [
				{"toObjectId": 201, "associationTypes": [{"category": "HUBSPOT_DEFINED", "typeId": 1, "label": "Primary"}]}
			]
		}`)
	}))
	defer api.Close()

	c := newTestClient(t, store, api)
	associations, paging, err := c.ListAssociations(context.Background(), "contacts", "101", "companies", ListOptions{})
	require.NoError(t, err)
	assert.Nil(t, paging)
	require.Len(t, associations, 1)
	assert.Equal(t, "201", associations[0].ToObjectID)
	assert.Equal(t, "contacts", associations[0].FromObjectType)
	require.Len(t, associations[0].Types, 1)
	assert.Equal(t, 1, associations[0].Types[0].TypeID)
}

func TestCreateAssociation(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SetAccessToken("pat-x"))

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/crm/v4/objects/contacts/101/associations/companies/201", r.URL.Path)

		var specs []associationSpec
		require.NoError(t, json.NewDecoder(r.Body).Decode(&specs))
		require.Len(t, specs, 1)
		assert.Equal(t, "HUBSPOT_DEFINED", specs[0].AssociationCategory)
		assert.Equal(t, 1, specs[0].AssociationTypeID)
		fmt.Fprint(w, `{}`)
	}))
	defer api.Close()

	c := newTestClient(t, store, api)
	require.NoError(t, c.CreateAssociation(context.Background(), "contacts", "101", "companies", "201"))
}

func TestCreateAssociation_UnknownPair(t *testing.T) {
	c := New(testStore(t))
	err := c.CreateAssociation(context.Background(), "contacts", "1", "owners", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no known association type")
}
