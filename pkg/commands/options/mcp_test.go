package options

import "testing"

func TestMCPOptionsValidate(t *testing.T) {
	tests := []struct {
		in      MCPOptions
		want    MCPOptions
		wantErr bool
	}{
		{in: MCPOptions{Transport: " STDIO "}, want: MCPOptions{Transport: "stdio"}},
		{
			in:   MCPOptions{Transport: "http", Addr: "127.0.0.1:0", Path: "notes/"},
			want: MCPOptions{Transport: "http", Addr: "127.0.0.1:0", Path: "/notes"},
		},
		{
			in:   MCPOptions{Transport: "http", Addr: ":8080", Path: ""},
			want: MCPOptions{Transport: "http", Addr: ":8080", Path: "/"},
		},
		{in: MCPOptions{Transport: "http", Addr: "localhost"}, wantErr: true},
		{in: MCPOptions{Transport: "grpc"}, wantErr: true},
	}
	for _, tc := range tests {
		got := tc.in
		err := got.Validate()
		if (err != nil) != tc.wantErr {
			t.Fatalf("Validate(%+v) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if err == nil && got != tc.want {
			t.Fatalf("Validate(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
