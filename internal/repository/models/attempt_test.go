package models

import (
	"database/sql/driver"
	"reflect"
	"testing"
)

func TestTagList_Value(t *testing.T) {
	tests := []struct {
		name    string
		tags    TagList
		wantVal driver.Value
	}{
		{name: "nil slice", tags: nil, wantVal: "[]"},
		{name: "empty slice", tags: TagList{}, wantVal: "[]"},
		{name: "single tag", tags: TagList{"fractions"}, wantVal: `["fractions"]`},
		{name: "multiple tags", tags: TagList{"fractions", "division"}, wantVal: `["fractions","division"]`},
		{name: "tag with quote", tags: TagList{`it's "x"`}, wantVal: `["it's \"x\""]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotVal, err := tt.tags.Value()
			if err != nil {
				t.Fatalf("TagList.Value() error = %v", err)
			}
			if !reflect.DeepEqual(gotVal, tt.wantVal) {
				t.Errorf("TagList.Value() = %v, want %v", gotVal, tt.wantVal)
			}
		})
	}
}

func TestFlag_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    Flag
		wantErr bool
	}{
		{name: "int64 one", value: int64(1), want: true},
		{name: "int64 zero", value: int64(0), want: false},
		{name: "float one", value: float64(1), want: true},
		{name: "bool", value: true, want: true},
		{name: "string True", value: "True", want: true},
		{name: "bytes 0", value: []byte("0"), want: false},
		{name: "string 1.0", value: "1.0", want: true},
		{name: "int64 two", value: int64(2), wantErr: true},
		{name: "nil", value: nil, wantErr: true},
		{name: "garbage", value: "maybe", wantErr: true},
		{name: "unsupported type", value: struct{}{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flag
			err := f.Scan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Flag.Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && f != tt.want {
				t.Errorf("Flag.Scan() = %v, want %v", f, tt.want)
			}
		})
	}
}

func TestFlag_Value(t *testing.T) {
	if v, _ := Flag(true).Value(); v != int64(1) {
		t.Errorf("Flag(true).Value() = %v, want 1", v)
	}
	if v, _ := Flag(false).Value(); v != int64(0) {
		t.Errorf("Flag(false).Value() = %v, want 0", v)
	}
}
