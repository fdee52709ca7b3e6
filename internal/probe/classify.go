package probe

// Curated messages for well-known codes. Checked before the range fallback
// so 408 reads "Request Timeout" rather than the generic client-error text.
var statusMessages = map[int]string{
	200: "✅ Site is Live",
	201: "✅ Created",
	204: "✅ No Content",
	301: "↗️ Moved Permanently",
	302: "↗️ Found (Redirect)",
	304: "📋 Not Modified",
	400: "❌ Bad Request",
	401: "🔒 Unauthorized",
	403: "🔒 Access Forbidden",
	404: "❌ 404 Not Found",
	405: "❌ Method Not Allowed",
	408: "⏱️ Request Timeout",
	429: "⚠️ Too Many Requests",
	500: "⚠️ Internal Server Error",
	502: "⚠️ Bad Gateway",
	503: "⚠️ Service Unavailable",
	504: "⚠️ Gateway Timeout",
}

const (
	timeoutMessage         = "⏱️ Request Timeout"
	connectionErrorMessage = "❌ Connection Failed"

	// How much of an underlying failure is echoed back to the caller.
	maxErrorDetail = 50
)

// MessageFor maps an HTTP status code to its display message.
func MessageFor(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	switch {
	case code >= 200 && code < 300:
		return "✅ Success"
	case code >= 300 && code < 400:
		return "↗️ Redirect"
	case code >= 400 && code < 500:
		return "❌ Client Error"
	case code >= 500 && code < 600:
		return "⚠️ Server Error"
	default:
		return "❓ Unknown Status"
	}
}

func errorMessage(detail string) string {
	if r := []rune(detail); len(r) > maxErrorDetail {
		detail = string(r[:maxErrorDetail])
	}
	return "❌ Error: " + detail
}
