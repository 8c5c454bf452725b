package keyvalv1

import (
	"testing"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func TestInsertKeyValueRequest_WireLayout(t *testing.T) {
	req := &InsertKeyValueRequest{Key: "k", Value: "v"}

	data, err := proto.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x0a, 0x01, 'k', 0x12, 0x01, 'v'}
	if string(data) != string(want) {
		t.Fatalf("Marshal() = %x, want %x", data, want)
	}
}

func TestDescriptors(t *testing.T) {
	tests := []struct {
		name string
		msg  proto.Message
		want string
	}{
		{name: "get request", msg: &GetValueRequest{}, want: "keyval.GetValueRequest"},
		{name: "insert response", msg: &InsertKeyValueResponse{}, want: "keyval.InsertKeyValueResponse"},
		{name: "snapshot response", msg: &SnapshotResponse{}, want: "keyval.admin.v1.SnapshotResponse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(tt.msg.ProtoReflect().Descriptor().FullName()); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}

	if File_keyval_proto.Services().ByName("Value").Methods().ByName("InsertKeyValue") == nil {
		t.Error("keyval.Value/InsertKeyValue not in descriptor")
	}
	if File_admin_proto.Services().ByName("Admin").Methods().ByName("Snapshot") == nil {
		t.Error("keyval.admin.v1.Admin/Snapshot not in descriptor")
	}
}

func TestProtoJSON_FieldNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "json names", input: `{"path":"p","keyCount":"3","sizeBytes":"7","createdAt":"9"}`},
		{name: "proto names", input: `{"path":"p","key_count":"3","size_bytes":"7","created_at":"9"}`},
		{name: "numeric int64", input: `{"path":"p","keyCount":3,"sizeBytes":7,"createdAt":9}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp SnapshotResponse
			if err := protojson.Unmarshal([]byte(tt.input), &resp); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if resp.GetKeyCount() != 3 || resp.GetSizeBytes() != 7 || resp.GetCreatedAt() != 9 {
				t.Errorf("decoded = %v", &resp)
			}
		})
	}
}

func TestProtoJSON_RejectsInvalidUTF8(t *testing.T) {
	var req GetValueRequest
	if err := protojson.Unmarshal([]byte("{\"key\":\"k\xff\"}"), &req); err == nil {
		t.Fatalf("Unmarshal accepted invalid UTF-8, key = %q", req.GetKey())
	}

	if _, err := proto.Marshal(&InsertKeyValueRequest{Key: "k\xff"}); err == nil {
		t.Fatal("Marshal accepted invalid UTF-8")
	}
}
