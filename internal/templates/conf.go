package templates

// configFiles returns the project-level configuration files.
func configFiles() map[string]string {
	return map[string]string{
		".env.local": `# Public environment variables, exposed to the browser bundle.
NEXT_PUBLIC_APP_NAME={{.ProjectName}}
NEXT_PUBLIC_APP_URL=http://localhost:3000

# Server-only placeholders. Fill these in as you add integrations;
# anything without the NEXT_PUBLIC_ prefix stays off the client.
DATABASE_URL=
SMTP_URL=
ANALYTICS_ID=
`,

		"next.config.ts": `import type { NextConfig } from "next";

const nextConfig: NextConfig = {
  reactStrictMode: true,
  poweredByHeader: false,
  compress: true,
  images: {
    formats: ["image/avif", "image/webp"],
  },
  experimental: {
    optimizePackageImports: ["lucide-react"],
  },
};

export default nextConfig;
`,

		"instrumentation.ts": `export async function register() {
  if (process.env.NEXT_RUNTIME === "nodejs") {
    console.log((process.env.NEXT_PUBLIC_APP_NAME ?? "{{.ProjectName}}") + " server starting");
  }
}
`,

		"middleware.ts": `import { NextResponse } from "next/server";
import type { NextRequest } from "next/server";

export function middleware(request: NextRequest) {
  const response = NextResponse.next();

  response.headers.set("X-Frame-Options", "DENY");
  response.headers.set("X-Content-Type-Options", "nosniff");
  response.headers.set("Referrer-Policy", "strict-origin-when-cross-origin");

  return response;
}

export const config = {
  matcher: ["/((?!_next/static|_next/image|favicon.ico|robots.txt|sitemap.xml).*)"],
};
`,

		"lib/fonts.ts": `import { Inter, JetBrains_Mono } from "next/font/google";

export const fontSans = Inter({
  subsets: ["latin"],
  variable: "--font-sans",
});

export const fontMono = JetBrains_Mono({
  subsets: ["latin"],
  variable: "--font-mono",
});
`,

		"lib/site.ts": `export const siteConfig = {
  name: "{{.DisplayName}}",
  slug: "{{.ProjectName}}",
  url: process.env.NEXT_PUBLIC_APP_URL ?? "http://localhost:3000",
  description: "{{.DisplayName}} is a Next.js app with shadcn/ui, dark mode, and sensible defaults.",
};

export type SiteConfig = typeof siteConfig;
`,
	}
}
