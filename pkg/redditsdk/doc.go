/*
Package redditsdk provides a small client for the content API used by the frontpage
service: an access-token manager, authenticated GET and form POST helpers, and the raw
listing types returned by the upstream.

# Client and TokenManager

A Client owns exactly one TokenManager. Every upstream call asks the manager for a bearer
token first:

	tokens := redditsdk.NewTokenManager(creds, "https://www.reddit.com", "frontpage/0.1.0")
	client := redditsdk.NewClient("https://oauth.reddit.com", tokens)

	var listing redditsdk.Listing
	err := client.Get(ctx, "/r/golang/new", url.Values{"limit": {"25"}}, &listing)

# Grants

The TokenManager supports two grants and picks one on every call from the credentials it
holds:

  - refresh_token: used when a refresh token is configured (client secret optional)
  - password: used otherwise (client id, client secret, username and password required)

A token is reused while it has more than SafetyMargin of validity left. There is no
single-flight coordination: concurrent callers that find the cache stale each run their
own exchange and the last one to finish wins the cache.

# Errors

  - ConfigurationError: required credentials are missing (all names listed)
  - AuthError: the token endpoint rejected the grant
  - UpstreamError: a resource call returned a non-success status

Nothing in this package retries.
*/
package redditsdk
