// Package s3 publishes rendered QR codes to Amazon S3 or an S3-compatible
// service (MinIO, R2, Wasabi) and builds their public URLs.
//
//	store, err := s3.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	url, err := store.Put(ctx, "qr/"+res.Key+".svg", res.ContentType, res.Body)
//
// Static credentials are used when both AccessKeyID and SecretKey are set;
// otherwise the default AWS credential chain applies. Errors are mapped to
// the sentinels in errors.go.
package s3
