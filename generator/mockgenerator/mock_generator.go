package mockgenerator

import (
	"context"

	"github.com/nacallas/SkidmarkOS-sub001/generator"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) Generate(ctx context.Context, req *generator.Request) (map[string]string, error) {
	args := c.Called(ctx, req)

	var roasts map[string]string
	if args.Get(0) != nil {
		roasts = args.Get(0).(map[string]string)
	}
	return roasts, args.Error(1)
}
