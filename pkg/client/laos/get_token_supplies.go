package laos

import "context"

func (c *BasicClient) GetTokenSupplies(
	ctx context.Context,
	req *GetTokenSuppliesRequest,
) (*GetTokenSuppliesResponse, error) {
	var resp GetTokenSuppliesResponse
	if err := c.post(ctx, "GetTokenSupplies", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
