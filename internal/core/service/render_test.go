package service

import "testing"

func TestRenderBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain text passes through",
			raw:  "hello world",
			want: "hello world",
		},
		{
			name: "markup is escaped",
			raw:  "<script>alert('x')</script>",
			want: "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;",
		},
		{
			name: "image markers become an image tag",
			raw:  "hello {{img}}http://x/y.png{{/img}} world",
			want: "hello <img src='http://x/y.png'/> world",
		},
		{
			name: "text around markers is still escaped",
			raw:  "<b>hi</b> {{img}}http://x/y.png{{/img}}",
			want: "&lt;b&gt;hi&lt;/b&gt; <img src='http://x/y.png'/>",
		},
		{
			name: "multiple images",
			raw:  "{{img}}a.png{{/img}}{{img}}b.png{{/img}}",
			want: "<img src='a.png'/><img src='b.png'/>",
		},
		{
			name: "unclosed marker still substituted",
			raw:  "start {{img}}a.png",
			want: "start <img src='a.png",
		},
		{
			name: "empty body",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderBody(tt.raw); got != tt.want {
				t.Errorf("RenderBody(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
