package templates

// fence is a markdown code fence, spelled out because the template
// sources are Go raw strings and cannot contain backticks.
const fence = "```"

const tick = "`"

// docsFiles returns the MDX documentation section: the sidebar and
// layout around a dynamic [slug] route, sample documents, and the
// next.config.mjs rewrite that wires the MDX loader. It replaces the
// static docs landing page from the base set.
func docsFiles() map[string]string {
	return map[string]string{
		"next.config.mjs": `import createMDX from "@next/mdx";

/** @type {import('next').NextConfig} */
const nextConfig = {
  reactStrictMode: true,
  poweredByHeader: false,
  compress: true,
  pageExtensions: ["ts", "tsx", "md", "mdx"],
  images: {
    formats: ["image/avif", "image/webp"],
  },
  experimental: {
    optimizePackageImports: ["lucide-react"],
  },
};

const withMDX = createMDX({});

export default withMDX(nextConfig);
`,

		"mdx-components.tsx": `import type { MDXComponents } from "mdx/types"
import Link from "next/link"

export function useMDXComponents(components: MDXComponents): MDXComponents {
  return {
    h1: ({ children }) => (
      <h1 className="mt-2 text-3xl font-bold tracking-tight">{children}</h1>
    ),
    h2: ({ children }) => (
      <h2 className="mt-10 border-b pb-2 text-xl font-semibold">{children}</h2>
    ),
    h3: ({ children }) => (
      <h3 className="mt-8 text-lg font-semibold">{children}</h3>
    ),
    p: ({ children }) => (
      <p className="text-muted-foreground mt-4 leading-7">{children}</p>
    ),
    ul: ({ children }) => (
      <ul className="text-muted-foreground mt-4 ml-6 list-disc space-y-2">{children}</ul>
    ),
    ol: ({ children }) => (
      <ol className="text-muted-foreground mt-4 ml-6 list-decimal space-y-2">{children}</ol>
    ),
    code: ({ children }) => (
      <code className="bg-muted rounded px-1.5 py-0.5 font-mono text-sm">{children}</code>
    ),
    pre: ({ children }) => (
      <pre className="bg-muted mt-4 overflow-x-auto rounded-lg p-4 text-sm [&_code]:bg-transparent [&_code]:p-0">
        {children}
      </pre>
    ),
    a: ({ href, children }) => (
      <Link href={href ?? "#"} className="font-medium underline underline-offset-4">
        {children}
      </Link>
    ),
    ...components,
  }
}
`,

		"components/docs-sidebar.tsx": `"use client"

import Link from "next/link"
import { usePathname } from "next/navigation"

import { cn } from "@/lib/utils"

export const docs = [
  { slug: "introduction", title: "Introduction" },
  { slug: "installation", title: "Installation" },
  { slug: "configuration", title: "Configuration" },
  { slug: "deployment", title: "Deployment" },
]

export function DocsSidebar() {
  const pathname = usePathname()

  return (
    <nav className="grid gap-1 text-sm">
      <Link
        href="/docs"
        className={cn(
          "rounded-md px-3 py-2 transition-colors",
          pathname === "/docs"
            ? "bg-muted font-medium"
            : "text-muted-foreground hover:text-foreground"
        )}
      >
        Overview
      </Link>
      {docs.map((doc) => {
        const href = "/docs/" + doc.slug
        return (
          <Link
            key={doc.slug}
            href={href}
            className={cn(
              "rounded-md px-3 py-2 transition-colors",
              pathname === href
                ? "bg-muted font-medium"
                : "text-muted-foreground hover:text-foreground"
            )}
          >
            {doc.title}
          </Link>
        )
      })}
    </nav>
  )
}
`,

		"app/docs/layout.tsx": `import type { ReactNode } from "react"

import { DocsSidebar } from "@/components/docs-sidebar"

export default function DocsLayout({ children }: { children: ReactNode }) {
  return (
    <div className="container mx-auto flex gap-10 px-4 py-12">
      <aside className="hidden w-56 shrink-0 md:block">
        <div className="sticky top-20">
          <DocsSidebar />
        </div>
      </aside>
      <div className="min-w-0 max-w-3xl flex-1">{children}</div>
    </div>
  )
}
`,

		"app/docs/page.tsx": `import type { Metadata } from "next"
import Link from "next/link"

import { docs } from "@/components/docs-sidebar"
import {
  Card,
  CardDescription,
  CardHeader,
  CardTitle,
} from "@/components/ui/card"

export const metadata: Metadata = {
  title: "Docs",
  description: "Guides for working with {{.DisplayName}}.",
}

const descriptions: Record<string, string> = {
  introduction: "What {{.DisplayName}} is and how the pieces fit together.",
  installation: "Get a development environment running.",
  configuration: "Environment variables and site settings.",
  deployment: "Ship the app to production.",
}

export default function DocsIndexPage() {
  return (
    <div>
      <h1 className="text-3xl font-bold tracking-tight">Documentation</h1>
      <p className="text-muted-foreground mt-4 leading-7">
        Guides for {{.DisplayName}}, written in MDX. Add your own under
        content/docs and they pick up the same styling.
      </p>
      <div className="mt-8 grid gap-4 sm:grid-cols-2">
        {docs.map((doc) => (
          <Link key={doc.slug} href={"/docs/" + doc.slug}>
            <Card className="hover:bg-muted/50 h-full transition-colors">
              <CardHeader>
                <CardTitle className="text-base">{doc.title}</CardTitle>
                <CardDescription>{descriptions[doc.slug]}</CardDescription>
              </CardHeader>
            </Card>
          </Link>
        ))}
      </div>
    </div>
  )
}
`,

		"app/docs/[slug]/page.tsx": `import type { Metadata } from "next"
import { notFound } from "next/navigation"

import { docs } from "@/components/docs-sidebar"

export const dynamicParams = false

export function generateStaticParams() {
  return docs.map((doc) => ({ slug: doc.slug }))
}

export async function generateMetadata({
  params,
}: {
  params: Promise<{ slug: string }>
}): Promise<Metadata> {
  const { slug } = await params
  const doc = docs.find((d) => d.slug === slug)
  return { title: doc?.title ?? "Docs" }
}

export default async function DocPage({
  params,
}: {
  params: Promise<{ slug: string }>
}) {
  const { slug } = await params
  if (!docs.some((doc) => doc.slug === slug)) {
    notFound()
  }

  const { default: Content } = await import("@/content/docs/" + slug + ".mdx")
  return <Content />
}
`,

		"content/docs/introduction.mdx": `# Introduction

{{.DisplayName}} is a Next.js application scaffolded with the App
Router, Tailwind CSS, and the full shadcn/ui component set. This
section explains what you got and where to go next.

## What is included

- A theme-aware shell with a sticky header, mobile navigation, and a
  footer, wired into every page through the root layout.
- Dark mode backed by ` + tick + `next-themes` + tick + `, with a toggle in the header.
- Marketing pages (about, contact, privacy, terms) you are meant to
  rewrite, plus convention files for errors, loading states, sitemap,
  and robots.
- This documentation section, rendered from MDX files in
  ` + tick + `content/docs` + tick + `.

## Project layout

` + fence + `
app/          routes, layouts, and metadata files
components/   shared components, shadcn/ui under components/ui
content/docs  these MDX documents
lib/          fonts, site settings, utilities
` + fence + `

Continue with [Installation](/docs/installation).
`,

		"content/docs/installation.mdx": `# Installation

The project runs on Node.js 18.18 or newer.

## Development server

Install dependencies and start the dev server:

` + fence + `bash
npm install
npm run dev
` + fence + `

The app serves on [http://localhost:3000](http://localhost:3000) and
hot-reloads as you edit.

## Editor setup

ESLint ships configured. Most editors pick up the flat config
automatically; if not, point your ESLint plugin at the project root.

## Adding components

Every shadcn/ui component is already installed under
` + tick + `components/ui` + tick + `. They are plain source files, edit them freely.
`,

		"content/docs/configuration.mdx": `# Configuration

Site-wide settings live in two places: environment variables and
` + tick + `lib/site.ts` + tick + `.

## Environment variables

` + tick + `.env.local` + tick + ` holds the variables the app reads at build and run
time:

` + fence + `bash
NEXT_PUBLIC_APP_NAME={{.ProjectName}}
NEXT_PUBLIC_APP_URL=http://localhost:3000
` + fence + `

Variables prefixed with ` + tick + `NEXT_PUBLIC_` + tick + ` are inlined into the browser
bundle. Keep secrets unprefixed and server-only.

## Site settings

` + tick + `lib/site.ts` + tick + ` exports the site name, URL, and description used by
the header, footer, and metadata routes. Change it once and every
page follows.

## Fonts

` + tick + `lib/fonts.ts` + tick + ` configures the sans and mono font families through
` + tick + `next/font` + tick + `. Swap the imports to change typefaces.
`,

		"content/docs/deployment.mdx": `# Deployment

The scaffold deploys like any Next.js app.

## Build

` + fence + `bash
npm run build
npm start
` + fence + `

The production build prerenders every static route, including these
docs, at build time.

## Hosting

Any Node.js host works. For serverless platforms, connect the
repository and the platform detects Next.js automatically. Set the
environment variables from ` + tick + `.env.local` + tick + ` in the host's dashboard,
with ` + tick + `NEXT_PUBLIC_APP_URL` + tick + ` pointing at the public URL.

## Checklist

1. Replace the placeholder copy on the marketing pages.
2. Point ` + tick + `NEXT_PUBLIC_APP_URL` + tick + ` at the production domain so the
   sitemap and robots routes emit correct URLs.
3. Review the security headers in ` + tick + `middleware.ts` + tick + `.
`,
	}
}
