// Package transfer defines the AWS Transfer Family operations: typed options, request builders
// and the adapter wiring that binds each of them to a client.
package transfer

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	tftypes "github.com/aws/aws-sdk-go-v2/service/transfer/types"
)

// Operation names as they appear in prompts, logs and output records.
const (
	OpCreateServer         = "transfer:CreateServer"
	OpDescribeServer       = "transfer:DescribeServer"
	OpListServers          = "transfer:ListServers"
	OpUpdateServer         = "transfer:UpdateServer"
	OpDeleteServer         = "transfer:DeleteServer"
	OpStartServer          = "transfer:StartServer"
	OpStopServer           = "transfer:StopServer"
	OpCreateUser           = "transfer:CreateUser"
	OpDescribeUser         = "transfer:DescribeUser"
	OpListUsers            = "transfer:ListUsers"
	OpUpdateUser           = "transfer:UpdateUser"
	OpDeleteUser           = "transfer:DeleteUser"
	OpImportSshPublicKey   = "transfer:ImportSshPublicKey"
	OpDeleteSshPublicKey   = "transfer:DeleteSshPublicKey"
	OpTestIdentityProvider = "transfer:TestIdentityProvider"
	OpTagResource          = "transfer:TagResource"
	OpUntagResource        = "transfer:UntagResource"
	OpListTagsForResource  = "transfer:ListTagsForResource"
)

// buildTags converts key/value pairs into SDK tags ordered by key.
func buildTags(tags map[string]string) []tftypes.Tag {
	if len(tags) == 0 {
		return nil
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]tftypes.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, tftypes.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return out
}

// buildMappings converts entry/target pairs into logical home directory mappings ordered by entry.
func buildMappings(mappings map[string]string) []tftypes.HomeDirectoryMapEntry {
	if len(mappings) == 0 {
		return nil
	}

	entries := make([]string, 0, len(mappings))
	for e := range mappings {
		entries = append(entries, e)
	}
	sort.Strings(entries)

	out := make([]tftypes.HomeDirectoryMapEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, tftypes.HomeDirectoryMapEntry{Entry: aws.String(e), Target: aws.String(mappings[e])})
	}
	return out
}

func buildProtocols(names []string) ([]tftypes.Protocol, error) {
	if len(names) == 0 {
		return nil, nil
	}

	out := make([]tftypes.Protocol, 0, len(names))
	for _, n := range names {
		p, err := parseProtocol(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
