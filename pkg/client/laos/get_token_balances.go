package laos

import "context"

func (c *BasicClient) GetTokenBalances(
	ctx context.Context,
	req *GetTokenBalancesRequest,
) (*GetTokenBalancesResponse, error) {
	var resp GetTokenBalancesResponse
	if err := c.post(ctx, "GetTokenBalances", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
