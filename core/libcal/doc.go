// Package libcal is a small client for the Springshare LibCal 1.1 REST API,
// limited to what the inventory report needs: the OAuth client-credentials
// token exchange and paginated equipment collections.
//
// Collections are fetched with pageSize=100, visibility=admin_only and a
// zero-based pageIndex until a page comes back shorter than the page size.
// Any non-2xx response is returned as a *StatusError; there are no retries.
//
//	c, err := libcal.NewClient(cfg)
//	if err := c.Authenticate(ctx); err != nil { ... }
//	items, err := libcal.FetchAll[map[string]any](ctx, c, c.ItemsPath())
package libcal
