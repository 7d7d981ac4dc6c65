package plans_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitaran/vitaran/pkg/plans"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    plans.ID
		wantErr bool
	}{
		{in: "ECOM", want: plans.Ecom},
		{in: "quick", want: plans.Quick},
		{in: "  All ", want: plans.All},
		{in: "", wantErr: true},
		{in: "PREMIUM", wantErr: true},
		{in: "ECOM2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := plans.Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, plans.ErrUnknown)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog(t *testing.T) {
	all := plans.Catalog()
	require.Len(t, all, 3)

	ecom, ok := plans.Lookup(plans.Ecom)
	require.True(t, ok)
	require.Equal(t, []string{"Amazon", "Flipkart", "Meesho", "Myntra"}, ecom.Platforms)
	require.Equal(t, 60, ecom.MaxProfit)

	quick, ok := plans.Lookup(plans.Quick)
	require.True(t, ok)
	require.Equal(t, []string{"Swiggy", "Zomato", "Zepto", "Instamart", "Blinkit"}, quick.Platforms)
	require.Equal(t, 80, quick.MaxProfit)

	everything, ok := plans.Lookup(plans.All)
	require.True(t, ok)
	require.Len(t, everything.Platforms, 9)
	require.Equal(t, 100, everything.MaxProfit)
	for _, p := range append(ecom.Platforms, quick.Platforms...) {
		require.True(t, everything.Allows(p), p)
	}

	_, ok = plans.Lookup("GOLD")
	require.False(t, ok)
}

func TestLookupReturnsCopy(t *testing.T) {
	p, _ := plans.Lookup(plans.Ecom)
	p.Platforms[0] = "Tampered"

	again, _ := plans.Lookup(plans.Ecom)
	require.Equal(t, "Amazon", again.Platforms[0])
}

func TestIDUnmarshalJSON(t *testing.T) {
	var v struct {
		Plan *plans.ID `json:"plan"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"plan":"quick"}`), &v))
	require.NotNil(t, v.Plan)
	require.Equal(t, plans.Quick, *v.Plan)

	require.NoError(t, json.Unmarshal([]byte(`{"plan":null}`), &v))
	require.Nil(t, v.Plan)

	require.Error(t, json.Unmarshal([]byte(`{"plan":"GOLD"}`), &v))
}

func TestLogoPath(t *testing.T) {
	require.Equal(t, "/logos/instamart.png", plans.LogoPath("Instamart"))
}
