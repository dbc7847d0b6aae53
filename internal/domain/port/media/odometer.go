package media

import "context"

// OdometerReader estimates the distance shown on an odometer photo
type OdometerReader interface {
	ReadDistance(ctx context.Context, filename string, img *Image) (int64, error)
}
