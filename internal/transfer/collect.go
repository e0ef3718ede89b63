package transfer

import (
	"context"

	tftypes "github.com/aws/aws-sdk-go-v2/service/transfer/types"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// CollectServers lists every server through the ListServers adapter, following
// continuation tokens. It feeds the interactive server selector.
func CollectServers(ctx context.Context, client awsclient.TransferAPI) ([]tftypes.ListedServer, error) {
	var (
		servers []tftypes.ListedServer
		callErr error
	)

	collect := cmdlet.EmitterFunc(func(rec cmdlet.Record) error {
		if rec.Err != nil {
			callErr = rec.Err
			return nil
		}
		page, _ := rec.Value.([]tftypes.ListedServer)
		servers = append(servers, page...)
		return nil
	})

	runner := cmdlet.NewRunner(cmdlet.Always(true), collect, nil)
	if _, err := cmdlet.Invoke(ctx, runner, ListServers(client), &ListOptions{}, cmdlet.Settings{}); err != nil {
		return nil, err
	}
	if callErr != nil {
		return nil, callErr
	}
	return servers, nil
}
