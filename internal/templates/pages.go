package templates

// pageFiles returns the route files: marketing pages plus the App
// Router convention files (not-found, error, loading, sitemap, robots).
func pageFiles() map[string]string {
	return map[string]string{
		"app/about/page.tsx": `import type { Metadata } from "next"

import { siteConfig } from "@/lib/site"
import { HoverPrefetchLink } from "@/components/hover-prefetch-link"
import { Button } from "@/components/ui/button"

export const metadata: Metadata = {
  title: "About",
  description: "What this project is and how it is put together.",
}

export default function AboutPage() {
  return (
    <div className="container mx-auto max-w-3xl px-4 py-12">
      <h1 className="text-3xl font-bold tracking-tight">About</h1>
      <p className="text-muted-foreground mt-4 leading-7">
        {siteConfig.name} is built on Next.js with the App Router, styled
        with Tailwind CSS, and assembled from shadcn/ui components. Dark
        mode, streaming, and metadata are wired up out of the box.
      </p>
      <p className="text-muted-foreground mt-4 leading-7">
        Everything on this page is a starting point. Replace the copy,
        rearrange the sections, and make it yours.
      </p>
      <div className="mt-8">
        <Button asChild>
          <HoverPrefetchLink href="/get-started">Get started</HoverPrefetchLink>
        </Button>
      </div>
    </div>
  )
}
`,

		"app/contact/page.tsx": `import type { Metadata } from "next"
import { Github, Mail, MessageSquare } from "lucide-react"

import {
  Card,
  CardDescription,
  CardHeader,
  CardTitle,
} from "@/components/ui/card"

export const metadata: Metadata = {
  title: "Contact",
  description: "Ways to get in touch.",
}

const channels = [
  {
    title: "Email",
    description: "hello@example.com",
    href: "mailto:hello@example.com",
    icon: Mail,
  },
  {
    title: "GitHub",
    description: "Open an issue or a discussion",
    href: "https://github.com",
    icon: Github,
  },
  {
    title: "Chat",
    description: "Join the community server",
    href: "https://discord.com",
    icon: MessageSquare,
  },
]

export default function ContactPage() {
  return (
    <div className="container mx-auto max-w-3xl px-4 py-12">
      <h1 className="text-3xl font-bold tracking-tight">Contact</h1>
      <p className="text-muted-foreground mt-4 leading-7">
        Pick whichever channel suits you. These are placeholders, point
        them at your real addresses.
      </p>
      <div className="mt-8 grid gap-4 sm:grid-cols-3">
        {channels.map((channel) => (
          <a key={channel.title} href={channel.href} target="_blank" rel="noreferrer">
            <Card className="hover:bg-muted/50 h-full transition-colors">
              <CardHeader>
                <channel.icon className="text-muted-foreground h-5 w-5" />
                <CardTitle className="mt-2 text-base">{channel.title}</CardTitle>
                <CardDescription>{channel.description}</CardDescription>
              </CardHeader>
            </Card>
          </a>
        ))}
      </div>
    </div>
  )
}
`,

		"app/privacy/page.tsx": `import type { Metadata } from "next"

import { siteConfig } from "@/lib/site"

export const metadata: Metadata = {
  title: "Privacy Policy",
  description: "How this site handles your data.",
}

export default function PrivacyPage() {
  return (
    <div className="container mx-auto max-w-3xl px-4 py-12">
      <h1 className="text-3xl font-bold tracking-tight">Privacy Policy</h1>
      <p className="text-muted-foreground mt-4 text-sm">
        Last updated: replace with a real date.
      </p>
      <section className="mt-8 space-y-4 leading-7">
        <h2 className="text-xl font-semibold">Data we collect</h2>
        <p className="text-muted-foreground">
          {siteConfig.name} does not collect personal data by default.
          Document here whatever analytics, forms, or third-party services
          you add.
        </p>
        <h2 className="text-xl font-semibold">Cookies</h2>
        <p className="text-muted-foreground">
          The theme preference is stored in local storage on your device.
          No tracking cookies are set by the starter.
        </p>
        <h2 className="text-xl font-semibold">Contact</h2>
        <p className="text-muted-foreground">
          Questions about this policy can be sent through the contact
          page.
        </p>
      </section>
    </div>
  )
}
`,

		"app/terms/page.tsx": `import type { Metadata } from "next"

import { siteConfig } from "@/lib/site"

export const metadata: Metadata = {
  title: "Terms of Service",
  description: "The rules for using this site.",
}

export default function TermsPage() {
  return (
    <div className="container mx-auto max-w-3xl px-4 py-12">
      <h1 className="text-3xl font-bold tracking-tight">Terms of Service</h1>
      <p className="text-muted-foreground mt-4 text-sm">
        Last updated: replace with a real date.
      </p>
      <section className="mt-8 space-y-4 leading-7">
        <h2 className="text-xl font-semibold">Acceptance</h2>
        <p className="text-muted-foreground">
          By using {siteConfig.name} you agree to these terms. Replace
          this boilerplate with terms reviewed for your jurisdiction.
        </p>
        <h2 className="text-xl font-semibold">Use of the service</h2>
        <p className="text-muted-foreground">
          Describe acceptable use, account rules, and content ownership
          here.
        </p>
        <h2 className="text-xl font-semibold">Liability</h2>
        <p className="text-muted-foreground">
          The service is provided as is, without warranty of any kind.
        </p>
      </section>
    </div>
  )
}
`,

		"app/get-started/page.tsx": `import type { Metadata } from "next"

import { StreamingSection } from "@/components/streaming-section"
import {
  Card,
  CardContent,
  CardDescription,
  CardHeader,
  CardTitle,
} from "@/components/ui/card"

export const metadata: Metadata = {
  title: "Get Started",
  description: "First steps after scaffolding.",
}

const steps = [
  {
    title: "Run the dev server",
    description: "Start the app locally and open http://localhost:3000.",
    command: "npm run dev",
  },
  {
    title: "Edit the home page",
    description: "Change app/page.tsx and watch it hot-reload.",
    command: "app/page.tsx",
  },
  {
    title: "Add components",
    description: "Every shadcn/ui component is already installed under components/ui.",
    command: "components/ui",
  },
]

export default function GetStartedPage() {
  return (
    <div className="container mx-auto max-w-3xl px-4 py-12">
      <h1 className="text-3xl font-bold tracking-tight">Get Started</h1>
      <div className="mt-8 grid gap-4">
        {steps.map((step, index) => (
          <Card key={step.title}>
            <CardHeader>
              <CardTitle className="text-base">
                {index + 1}. {step.title}
              </CardTitle>
              <CardDescription>{step.description}</CardDescription>
            </CardHeader>
            <CardContent>
              <code className="bg-muted rounded px-2 py-1 text-sm">{step.command}</code>
            </CardContent>
          </Card>
        ))}
        <StreamingSection />
      </div>
    </div>
  )
}
`,

		"app/docs/page.tsx": `import type { Metadata } from "next"

import {
  Card,
  CardDescription,
  CardHeader,
  CardTitle,
} from "@/components/ui/card"

export const metadata: Metadata = {
  title: "Docs",
  description: "Documentation and reference links.",
}

const resources = [
  {
    title: "Next.js",
    description: "App Router, rendering, and data fetching.",
    href: "https://nextjs.org/docs",
  },
  {
    title: "Tailwind CSS",
    description: "Utility classes and theming.",
    href: "https://tailwindcss.com/docs",
  },
  {
    title: "shadcn/ui",
    description: "The component library this starter ships with.",
    href: "https://ui.shadcn.com/docs",
  },
]

export default function DocsPage() {
  return (
    <div className="container mx-auto max-w-3xl px-4 py-12">
      <h1 className="text-3xl font-bold tracking-tight">Docs</h1>
      <p className="text-muted-foreground mt-4 leading-7">
        This starter keeps its documentation external. Re-run the
        scaffold with the docs option for an MDX-powered docs section.
      </p>
      <div className="mt-8 grid gap-4 sm:grid-cols-3">
        {resources.map((resource) => (
          <a key={resource.href} href={resource.href} target="_blank" rel="noreferrer">
            <Card className="hover:bg-muted/50 h-full transition-colors">
              <CardHeader>
                <CardTitle className="text-base">{resource.title}</CardTitle>
                <CardDescription>{resource.description}</CardDescription>
              </CardHeader>
            </Card>
          </a>
        ))}
      </div>
    </div>
  )
}
`,

		"app/not-found.tsx": `import Link from "next/link"

import { Button } from "@/components/ui/button"

export default function NotFound() {
  return (
    <div className="container mx-auto flex min-h-[60vh] flex-col items-center justify-center gap-4 px-4 text-center">
      <p className="text-muted-foreground font-mono text-sm">404</p>
      <h1 className="text-3xl font-bold tracking-tight">Page not found</h1>
      <p className="text-muted-foreground">
        The page you are looking for does not exist or has moved.
      </p>
      <Button asChild className="mt-2">
        <Link href="/">Back home</Link>
      </Button>
    </div>
  )
}
`,

		"app/error.tsx": `"use client"

import * as React from "react"

import { Button } from "@/components/ui/button"

export default function ErrorPage({
  error,
  reset,
}: {
  error: Error & { digest?: string }
  reset: () => void
}) {
  React.useEffect(() => {
    console.error(error)
  }, [error])

  return (
    <div className="container mx-auto flex min-h-[60vh] flex-col items-center justify-center gap-4 px-4 text-center">
      <h1 className="text-3xl font-bold tracking-tight">Something went wrong</h1>
      <p className="text-muted-foreground">
        An unexpected error occurred. It has been logged to the console.
      </p>
      <Button onClick={() => reset()} className="mt-2">
        Try again
      </Button>
    </div>
  )
}
`,

		"app/loading.tsx": `import { Skeleton } from "@/components/ui/skeleton"

export default function Loading() {
  return (
    <div className="container mx-auto max-w-3xl space-y-4 px-4 py-12">
      <Skeleton className="h-9 w-1/3" />
      <Skeleton className="h-5 w-2/3" />
      <Skeleton className="h-40 w-full" />
    </div>
  )
}
`,

		"app/sitemap.ts": `import type { MetadataRoute } from "next"

import { siteConfig } from "@/lib/site"

export default function sitemap(): MetadataRoute.Sitemap {
  const routes = ["", "/about", "/contact", "/docs", "/get-started", "/privacy", "/terms"]

  return routes.map((route) => ({
    url: siteConfig.url + route,
    lastModified: new Date(),
    changeFrequency: "monthly" as const,
    priority: route === "" ? 1 : 0.7,
  }))
}
`,

		"app/robots.ts": `import type { MetadataRoute } from "next"

import { siteConfig } from "@/lib/site"

export default function robots(): MetadataRoute.Robots {
  return {
    rules: {
      userAgent: "*",
      allow: "/",
    },
    sitemap: siteConfig.url + "/sitemap.xml",
  }
}
`,
	}
}
