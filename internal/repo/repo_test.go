package repo

import "testing"

func TestNormalizeDSN(t *testing.T) {
	cases := map[string]string{
		"":                                  "user=postgres dbname=postgres password=password sslmode=disable",
		"postgres://u:p@db/chain":           "postgres://u:p@db/chain?sslmode=require",
		"postgresql://u@db/chain?x=1":       "postgresql://u@db/chain?x=1&sslmode=require",
		"host=db user=u":                    "host=db user=u sslmode=require",
		"postgres://db/chain?sslmode=allow": "postgres://db/chain?sslmode=allow",
	}
	for in, want := range cases {
		if got := NormalizeDSN(in); got != want {
			t.Fatalf("NormalizeDSN(%q) = %q, want %q", in, got, want)
		}
	}
}
