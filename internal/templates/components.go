package templates

// componentFiles returns the shared React components. They follow the
// shadcn/ui conventions the generated project already uses: double
// quotes, no semicolons, "@/" imports.
func componentFiles() map[string]string {
	return map[string]string{
		"components/theme-provider.tsx": `"use client"

import * as React from "react"
import { ThemeProvider as NextThemesProvider } from "next-themes"

export function ThemeProvider({
  children,
  ...props
}: React.ComponentProps<typeof NextThemesProvider>) {
  return <NextThemesProvider {...props}>{children}</NextThemesProvider>
}
`,

		"components/mode-toggle.tsx": `"use client"

import * as React from "react"
import { Moon, Sun } from "lucide-react"
import { useTheme } from "next-themes"

import { Button } from "@/components/ui/button"
import {
  DropdownMenu,
  DropdownMenuContent,
  DropdownMenuItem,
  DropdownMenuTrigger,
} from "@/components/ui/dropdown-menu"

export function ModeToggle() {
  const { setTheme } = useTheme()

  return (
    <DropdownMenu>
      <DropdownMenuTrigger asChild>
        <Button variant="outline" size="icon">
          <Sun className="h-[1.2rem] w-[1.2rem] scale-100 rotate-0 transition-all dark:scale-0 dark:-rotate-90" />
          <Moon className="absolute h-[1.2rem] w-[1.2rem] scale-0 rotate-90 transition-all dark:scale-100 dark:rotate-0" />
          <span className="sr-only">Toggle theme</span>
        </Button>
      </DropdownMenuTrigger>
      <DropdownMenuContent align="end">
        <DropdownMenuItem onClick={() => setTheme("light")}>Light</DropdownMenuItem>
        <DropdownMenuItem onClick={() => setTheme("dark")}>Dark</DropdownMenuItem>
        <DropdownMenuItem onClick={() => setTheme("system")}>System</DropdownMenuItem>
      </DropdownMenuContent>
    </DropdownMenu>
  )
}
`,

		"components/header.tsx": `import Link from "next/link"

import { siteConfig } from "@/lib/site"
import { MobileMenu } from "@/components/mobile-menu"
import { ModeToggle } from "@/components/mode-toggle"

export const navLinks = [
  { href: "/about", label: "About" },
  { href: "/docs", label: "Docs" },
  { href: "/contact", label: "Contact" },
]

export function Header() {
  return (
    <header className="bg-background/95 supports-[backdrop-filter]:bg-background/60 sticky top-0 z-50 w-full border-b backdrop-blur">
      <div className="container mx-auto flex h-14 items-center px-4">
        <Link href="/" className="mr-6 flex items-center gap-2 font-semibold">
          {siteConfig.name}
        </Link>
        <nav className="hidden flex-1 items-center gap-6 text-sm md:flex">
          {navLinks.map((link) => (
            <Link
              key={link.href}
              href={link.href}
              className="text-muted-foreground hover:text-foreground transition-colors"
            >
              {link.label}
            </Link>
          ))}
        </nav>
        <div className="flex flex-1 items-center justify-end gap-2 md:flex-none">
          <ModeToggle />
          <MobileMenu />
        </div>
      </div>
    </header>
  )
}
`,

		"components/mobile-menu.tsx": `"use client"

import * as React from "react"
import Link from "next/link"
import { Menu } from "lucide-react"

import { Button } from "@/components/ui/button"
import {
  Sheet,
  SheetContent,
  SheetHeader,
  SheetTitle,
  SheetTrigger,
} from "@/components/ui/sheet"

const links = [
  { href: "/", label: "Home" },
  { href: "/about", label: "About" },
  { href: "/docs", label: "Docs" },
  { href: "/contact", label: "Contact" },
  { href: "/get-started", label: "Get Started" },
]

export function MobileMenu() {
  const [open, setOpen] = React.useState(false)

  return (
    <Sheet open={open} onOpenChange={setOpen}>
      <SheetTrigger asChild>
        <Button variant="ghost" size="icon" className="md:hidden">
          <Menu className="h-5 w-5" />
          <span className="sr-only">Open menu</span>
        </Button>
      </SheetTrigger>
      <SheetContent side="right">
        <SheetHeader>
          <SheetTitle>Menu</SheetTitle>
        </SheetHeader>
        <nav className="grid gap-2 px-4 text-sm">
          {links.map((link) => (
            <Link
              key={link.href}
              href={link.href}
              onClick={() => setOpen(false)}
              className="text-muted-foreground hover:text-foreground rounded-md px-2 py-2 transition-colors"
            >
              {link.label}
            </Link>
          ))}
        </nav>
      </SheetContent>
    </Sheet>
  )
}
`,

		"components/footer.tsx": `import Link from "next/link"

import { siteConfig } from "@/lib/site"

export function Footer() {
  return (
    <footer className="border-t">
      <div className="text-muted-foreground container mx-auto flex flex-col items-center justify-between gap-2 px-4 py-6 text-sm md:flex-row">
        <p>
          © {new Date().getFullYear()} {siteConfig.name}
        </p>
        <nav className="flex gap-4">
          <Link href="/privacy" className="hover:text-foreground transition-colors">
            Privacy
          </Link>
          <Link href="/terms" className="hover:text-foreground transition-colors">
            Terms
          </Link>
        </nav>
      </div>
    </footer>
  )
}
`,

		"components/hover-prefetch-link.tsx": `"use client"

import * as React from "react"
import Link from "next/link"

// Defers route prefetching until the user shows intent by hovering,
// trading a little latency for a lot less wasted bandwidth on
// link-heavy pages.
export function HoverPrefetchLink({
  href,
  children,
  ...props
}: React.ComponentProps<typeof Link>) {
  const [active, setActive] = React.useState(false)

  return (
    <Link
      href={href}
      prefetch={active ? null : false}
      onMouseEnter={() => setActive(true)}
      {...props}
    >
      {children}
    </Link>
  )
}
`,

		"components/suspense-boundary.tsx": `import { Suspense, type ReactNode } from "react"

import { Skeleton } from "@/components/ui/skeleton"

export function SuspenseBoundary({
  children,
  fallback,
}: {
  children: ReactNode
  fallback?: ReactNode
}) {
  return (
    <Suspense fallback={fallback ?? <Skeleton className="h-24 w-full" />}>
      {children}
    </Suspense>
  )
}
`,

		"components/streaming-section.tsx": `import { SuspenseBoundary } from "@/components/suspense-boundary"
import {
  Card,
  CardContent,
  CardDescription,
  CardHeader,
  CardTitle,
} from "@/components/ui/card"

async function SlowContent() {
  await new Promise((resolve) => setTimeout(resolve, 800))
  return (
    <p className="text-muted-foreground text-sm">
      This block rendered on the server and streamed in after the rest of
      the page, inside a Suspense boundary.
    </p>
  )
}

export function StreamingSection() {
  return (
    <Card>
      <CardHeader>
        <CardTitle>Streaming</CardTitle>
        <CardDescription>Server components with Suspense</CardDescription>
      </CardHeader>
      <CardContent>
        <SuspenseBoundary>
          <SlowContent />
        </SuspenseBoundary>
      </CardContent>
    </Card>
  )
}
`,
	}
}
