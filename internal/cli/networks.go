package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tcfg/internal/cli/render"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List declared networks",
		Long: `List every declared network with its chain ID.

With --check each remote RPC endpoint is asked for its chain ID and compared
with the declared one. The in-process network is never probed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Check: check})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[[]networkJSON](cmd.OutOrStdout()).Render(toNetworksJSON(result))
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout(), !app.Config.NonInteractive).RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Probe each RPC endpoint for its chain ID")

	return cmd
}

// NewNetworkCmd creates the network command
func NewNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network [name]",
		Short: "Show one network and its explorer settings",
		Long: `Show a single network with its RPC URL, signers and explorer
verification settings. Without a name an interactive picker is shown.

Examples:
  tcfg network JOCT
  tcfg network polygonAmoy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowNetworkParams{}
			if len(args) > 0 {
				params.Name = args[0]
			}

			result, err := app.ShowNetwork.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.ShowNetworkResult](cmd.OutOrStdout()).Render(result)
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout(), !app.Config.NonInteractive).RenderNetwork(result)
		},
	}

	return cmd
}

type networkJSON struct {
	Name          string `json:"name"`
	ChainID       uint64 `json:"chainId"`
	URL           string `json:"url,omitempty"`
	Accounts      int    `json:"accounts"`
	Local         bool   `json:"local"`
	Probed        bool   `json:"probed"`
	RemoteChainID uint64 `json:"remoteChainId,omitempty"`
	Error         string `json:"error,omitempty"`
}

func toNetworksJSON(result *usecase.ListNetworksResult) []networkJSON {
	out := make([]networkJSON, 0, len(result.Networks))
	for _, n := range result.Networks {
		entry := networkJSON{
			Name:          n.Name,
			ChainID:       n.ChainID,
			URL:           n.URL,
			Accounts:      n.Accounts,
			Local:         n.Local,
			Probed:        n.Probed,
			RemoteChainID: n.RemoteChainID,
		}
		if n.Error != nil {
			entry.Error = n.Error.Error()
		}
		out = append(out, entry)
	}
	return out
}
