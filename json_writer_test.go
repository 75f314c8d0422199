package mortgage

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty",
			write: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "field order",
			write: func(w *jsonObjectWriter) {
				w.Append("calc", CalcMortgage).Append("term", Years(30)).Append("rate", Percent(3.5))
			},
			want: `{"calc":"mortgage","term":"30y","rate":3.5}`,
		},
		{
			name: "embed",
			write: func(w *jsonObjectWriter) {
				w.Append("a", 1).Embed(json.RawMessage(` {"c":3,"d":4} `)).Append("b", 2)
			},
			want: `{"a":1,"c":3,"d":4,"b":2}`,
		},
		{
			name: "embed empty object",
			write: func(w *jsonObjectWriter) {
				w.Append("a", 1).Embed([]byte(`{}`))
			},
			want: `{"a":1}`,
		},
		{
			name: "optional",
			write: func(w *jsonObjectWriter) {
				w.Append("a", 0).Optional("b", "").Optional("c", 0.0).Optional("d", "memo")
			},
			want: `{"a":0,"d":"memo"}`,
		},
		{
			name: "embed from",
			write: func(w *jsonObjectWriter) {
				w.Append("calc", CalcPoints).EmbedFrom(Points{Principal: 1000, Rate: 4, Term: Months(18), Points: 1})
			},
			want: `{"calc":"points","principal":1000,"rate":4,"term":"1y6m","points":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w jsonObjectWriter
			tt.write(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestJsonObjectWriter_Errors(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1).Embed([]byte(`[1,2]`)).Append("b", 2)
	if _, err := w.MarshalJSON(); err == nil {
		t.Error("MarshalJSON() after embedding an array: want an error")
	}

	var v jsonObjectWriter
	v.Append("nan", func() {})
	if _, err := v.MarshalJSON(); err == nil {
		t.Error("MarshalJSON() of a func value: want an error")
	}
}
